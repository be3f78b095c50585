package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// ReturnService implements tax-return operations over the shared store.
type ReturnService struct {
	returns  ports.ReturnRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewReturnService(returns ports.ReturnRepository, activity ports.ActivityRepository, logger zerolog.Logger) *ReturnService {
	return &ReturnService{returns: returns, activity: activity, logger: logger}
}

// Create opens a new return in status "Uploaded documents" with empty
// document and comment lists. When no owner is given the acting user owns
// the return; the owner name is snapshotted either way.
func (s *ReturnService) Create(ctx context.Context, in ports.CreateReturnInput) (*domain.TaxReturn, error) {
	ownerID := in.OwnerID
	ownerName := in.OwnerName
	if ownerID == 0 {
		ownerID = in.Actor.ID
		ownerName = in.Actor.Name
	}
	if ownerName == "" {
		ownerName = in.Actor.Name
	}

	now := today()
	ret := &domain.TaxReturn{
		UserID:      ownerID,
		UserName:    ownerName,
		Type:        in.Type,
		Year:        in.Year,
		Status:      domain.StatusUploadedDocuments,
		DateCreated: now,
		DateUpdated: now,
		Documents:   []domain.Document{},
		Comments:    []domain.Comment{},
	}

	created, err := s.returns.Insert(ctx, ret)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create tax return")
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, in.Actor,
		domain.ActionReturnCreated,
		fmt.Sprintf("Created new %s return for %s", in.Type, in.Year),
		&created.ID)

	s.logger.Info().Int("return_id", created.ID).Str("type", in.Type).Str("year", in.Year).Msg("tax return created")
	return created, nil
}

// Update shallow-merges patch into the return and refreshes DateUpdated.
// Unknown ids return domain.ErrReturnNotFound with no audit entry.
func (s *ReturnService) Update(ctx context.Context, actor ports.Actor, id int, patch ports.ReturnPatch) (*domain.TaxReturn, error) {
	ret, err := s.returns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		ret.Type = *patch.Type
	}
	if patch.Year != nil {
		ret.Year = *patch.Year
	}
	if patch.Status != nil {
		ret.Status = domain.ReturnStatus(*patch.Status)
	}
	if patch.AssignedTo != nil {
		ret.AssignedTo = *patch.AssignedTo
	}
	ret.DateUpdated = today()

	if err := s.returns.Update(ctx, ret); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, actor,
		domain.ActionReturnUpdated,
		fmt.Sprintf("Updated tax return #%d", id),
		&id)

	return ret, nil
}

// Get fetches one return. Non-admins can only read their own.
func (s *ReturnService) Get(ctx context.Context, actor ports.Actor, id int) (*domain.TaxReturn, error) {
	ret, err := s.returns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !seesAll(actor) && ret.UserID != actor.ID {
		return nil, domain.ErrReturnNotFound
	}
	return ret, nil
}

// List returns every return for admins, the actor's own otherwise.
func (s *ReturnService) List(ctx context.Context, actor ports.Actor) ([]*domain.TaxReturn, error) {
	if seesAll(actor) {
		return s.returns.List(ctx)
	}
	return s.returns.ListByUser(ctx, actor.ID)
}

// AddDocument appends upload metadata to the target return's document list.
func (s *ReturnService) AddDocument(ctx context.Context, in ports.AddDocumentInput) (*domain.Document, error) {
	doc := domain.Document{
		Name:       in.Name,
		Type:       in.Type,
		Size:       in.Size,
		UploadDate: today(),
		Notes:      in.Notes,
	}

	created, err := s.returns.AddDocument(ctx, in.ReturnID, doc)
	if err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, in.Actor,
		domain.ActionDocumentUpload,
		fmt.Sprintf("Uploaded %s", in.Name),
		&in.ReturnID)

	return created, nil
}

// AddComment appends a note authored by the acting user's display name.
func (s *ReturnService) AddComment(ctx context.Context, actor ports.Actor, returnID int, text string) (*domain.Comment, error) {
	comment := domain.Comment{
		Author: actor.Name,
		Date:   today(),
		Text:   text,
	}

	created, err := s.returns.AddComment(ctx, returnID, comment)
	if err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, actor,
		domain.ActionCommentAdded,
		fmt.Sprintf("Added comment to tax return #%d", returnID),
		&returnID)

	return created, nil
}

// StatusCounts tallies the actor's visible returns per progression state,
// in workflow order, including empty buckets. Returns carrying a free-text
// status fall outside every bucket.
func (s *ReturnService) StatusCounts(ctx context.Context, actor ports.Actor) ([]ports.StatusCount, error) {
	returns, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.ReturnStatus]int, len(domain.ReturnStatuses))
	for _, ret := range returns {
		if domain.IsKnownReturnStatus(ret.Status) {
			byStatus[ret.Status]++
		}
	}

	counts := make([]ports.StatusCount, 0, len(domain.ReturnStatuses))
	for _, status := range domain.ReturnStatuses {
		counts = append(counts, ports.StatusCount{Status: string(status), Count: byStatus[status]})
	}
	return counts, nil
}
