package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/clock"
	"ondernemercentraal.nl/repositories"
)

var (
	ErrTrackNotFound = apperrors.NotFound("Traject niet gevonden.")
	ErrCaseNotFound  = apperrors.NotFound("Dossier niet gevonden.")
)

// TrackInput is the create/update payload for a track.
type TrackInput struct {
	TrackTypeName           string  `json:"track_type_name"`
	PartnerOrganizationName *string `json:"partner_organization_name"`
	ProductName             *string `json:"product_name"`
	ProductCategoryName     *string `json:"product_category_name"`
	Priority                *string `json:"priority"`
	Status                  string  `json:"status"`
	CompletionCause         *string `json:"completion_cause"`
	CompletionApproved      bool    `json:"completion_approved"`
}

// ITrackService manages support tracks and their lifecycle.
type ITrackService interface {
	GetTrackByID(ctx context.Context, id uuid.UUID) (*models.Track, error)
	GetTracksForCase(ctx context.Context, caseID uuid.UUID) ([]models.Track, error)
	CreateTrack(ctx context.Context, user *models.User, caseID uuid.UUID, input TrackInput) (*models.Track, error)
	UpdateTrack(ctx context.Context, user *models.User, id uuid.UUID, input TrackInput) (*models.Track, error)
}

type TrackService struct {
	db    *gorm.DB
	repo  repositories.ITrackRepository
	clock clock.Clock
}

func NewTrackService() ITrackService {
	return &TrackService{
		db:    configs.GetDB(),
		repo:  repositories.NewTrackRepository(),
		clock: clock.NewSystem(),
	}
}

func (s *TrackService) GetTrackByID(ctx context.Context, id uuid.UUID) (*models.Track, error) {
	track, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return track, nil
}

func (s *TrackService) GetTracksForCase(ctx context.Context, caseID uuid.UUID) ([]models.Track, error) {
	return s.repo.FindAllByCase(ctx, caseID)
}

func (s *TrackService) CreateTrack(ctx context.Context, user *models.User, caseID uuid.UUID, input TrackInput) (*models.Track, error) {
	var created *models.Track
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newTrackTxRepos(tx)

		dossier, err := repos.cases.FindByID(ctx, caseID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCaseNotFound
			}
			return err
		}

		created, err = s.upsertTrack(ctx, repos, nil, dossier, user, input)
		return err
	})
	if txErr != nil {
		configslog.Log.Error("CreateTrack transaction failed", zap.String("caseID", caseID.String()), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Traject aangemaakt: %s (type %s, dossier %s).", created.ID, created.TrackTypeName(), caseID)
	return created, nil
}

func (s *TrackService) UpdateTrack(ctx context.Context, user *models.User, id uuid.UUID, input TrackInput) (*models.Track, error) {
	var updated *models.Track
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newTrackTxRepos(tx)

		track, err := repos.tracks.FindByIDLocked(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrTrackNotFound
			}
			return err
		}

		updated, err = s.upsertTrack(ctx, repos, track, track.Case, user, input)
		return err
	})
	if txErr != nil {
		configslog.Log.Error("UpdateTrack transaction failed", zap.String("id", id.String()), zap.Error(txErr))
		return nil, txErr
	}
	return updated, nil
}

type trackTxRepos struct {
	tracks       repositories.ITrackRepository
	tasks        repositories.ITaskRepository
	appointments repositories.IAppointmentRepository
	catalog      repositories.ICatalogRepository
	cases        repositories.ICaseRepository
}

func newTrackTxRepos(tx *gorm.DB) trackTxRepos {
	return trackTxRepos{
		tracks:       repositories.NewTrackRepositoryTx(tx),
		tasks:        repositories.NewTaskRepositoryTx(tx),
		appointments: repositories.NewAppointmentRepositoryTx(tx),
		catalog:      repositories.NewCatalogRepositoryTx(tx),
		cases:        repositories.NewCaseRepositoryTx(tx),
	}
}

// upsertTrack applies a create (track == nil) or update to a track. All
// side effects (task creation, SHVO intake appointment) happen through the
// same transaction-bound repositories, so they commit or roll back together
// with the track itself.
func (s *TrackService) upsertTrack(ctx context.Context, repos trackTxRepos, track *models.Track, dossier *models.Case, user *models.User, input TrackInput) (*models.Track, error) {
	creating := track == nil
	if creating {
		if dossier == nil {
			return nil, apperrors.Invariant("case must be provided when creating a track")
		}
		track = &models.Track{CompletionApproved: false, CaseID: dossier.ID, Case: dossier}
	}

	trackType, err := repos.catalog.FindTrackTypeByName(ctx, input.TrackTypeName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.UserInputf("Trajecttype '%s' is onbekend.", input.TrackTypeName)
		}
		return nil, err
	}

	var partnerOrganization *models.PartnerOrganization
	if input.PartnerOrganizationName != nil && *input.PartnerOrganizationName != "" {
		partnerOrganization, err = repos.catalog.FindPartnerOrganizationByName(ctx, *input.PartnerOrganizationName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Partnerorganisatie niet gevonden.")
			}
			return nil, err
		}
	}

	if trackType.PartnerOrganizationRequired && partnerOrganization == nil {
		return nil, apperrors.UserInputf("Een partnerorganisatie is verplicht voor trajecttype '%s'.", trackType.Name)
	}

	if input.CompletionCause != nil && input.Status != models.TrackStatusCompleted {
		return nil, apperrors.UserInputf(
			"Beëindigsreden mag alleen worden ingevuld wanneer de status gelijk is aan %s.",
			models.TrackStatusCompleted)
	}

	if input.Status != "" && input.Status != track.Status() {
		if err := validateUserPermission(user, configs.PermTrackUpdateStatus); err != nil {
			return nil, err
		}
		if err := applyStatusTransition(track, input.Status, input.CompletionCause, s.clock.Now()); err != nil {
			return nil, err
		}
	}

	var approvalTask *models.Task
	if input.CompletionApproved != track.CompletionApproved {
		if err := validateUserPermission(user, configs.PermTrackUpdateCompletionApproval); err != nil {
			return nil, err
		}
		if input.Status != models.TrackStatusCompleted {
			return nil, apperrors.UserInputf(
				"Trajectstatus moet '%s' zijn om de goedkeuring aan te passen.", models.TrackStatusCompleted)
		}
		track.CompletionApproved = input.CompletionApproved
		if input.CompletionApproved {
			approvalTask = buildCompletionApprovalTask(track.CaseID, s.clock.Now())
		}
	}

	if err := s.applyProductCategory(ctx, repos, track, user, input.ProductCategoryName); err != nil {
		return nil, err
	}

	newPartnerOrganizationID := organizationID(partnerOrganization)
	partnerChanged := !uuidPtrEqual(newPartnerOrganizationID, track.PartnerOrganizationID)
	if partnerChanged {
		if err := validateUserPermission(user, configs.PermTrackUpdatePartner); err != nil {
			return nil, err
		}
		track.PartnerOrganizationID = newPartnerOrganizationID
		track.PartnerOrganization = partnerOrganization
	}

	if trackType.ID != track.TrackTypeID || partnerChanged {
		if err := validateUserPermission(user, configs.PermTrackUpdate); err != nil {
			return nil, err
		}
		track.TrackTypeID = trackType.ID
		track.TrackType = trackType
		track.Priority = input.Priority
	}

	if err := s.applyProduct(ctx, repos, track, user, input.ProductName, partnerOrganization); err != nil {
		return nil, err
	}

	if creating {
		if err := repos.tracks.Create(ctx, track); err != nil {
			return nil, err
		}
	} else {
		if err := repos.tracks.Update(ctx, track); err != nil {
			return nil, err
		}
	}

	if approvalTask != nil {
		if err := repos.tasks.Create(ctx, approvalTask); err != nil {
			return nil, err
		}
		configslog.SLog.Infof("Vervolgtaak aangemaakt voor dossier %s (vervaldatum %s).",
			track.CaseID, approvalTask.DueDate.Format("2006-01-02"))
	}

	// An SHVO track always starts with an intake appointment.
	if creating && trackType.Name == models.TrackTypeSHVO {
		if err := s.createSHVOIntake(ctx, repos, track); err != nil {
			return nil, err
		}
	}

	return track, nil
}

func (s *TrackService) applyProductCategory(ctx context.Context, repos trackTxRepos, track *models.Track, user *models.User, categoryName *string) error {
	var category *models.ProductCategory
	if categoryName != nil && *categoryName != "" {
		found, err := repos.catalog.FindProductCategoryByName(ctx, *categoryName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.UserInputf("Productcategorie '%s' is onbekend.", *categoryName)
			}
			return err
		}
		category = found
	}

	newCategoryID := categoryID(category)
	if uuidPtrEqual(newCategoryID, track.ProductCategoryID) {
		return nil
	}
	if err := validateUserPermission(user, configs.PermTrackUpdateProductCategory); err != nil {
		return err
	}
	track.ProductCategoryID = newCategoryID
	track.ProductCategory = category
	return nil
}

func (s *TrackService) applyProduct(ctx context.Context, repos trackTxRepos, track *models.Track, user *models.User, productName *string, partnerOrganization *models.PartnerOrganization) error {
	var product *models.Product
	if productName != nil && *productName != "" {
		found, err := repos.catalog.FindProductByName(ctx, *productName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.Invariantf("product %q not found", *productName)
			}
			return err
		}
		product = found

		if track.TrackTypeName() != models.TrackTypeOndernemersdienstverlening {
			return apperrors.UserInput("Product mag alleen worden aangepast voor Ondernemersdienstverlening trajecten.")
		}
	}

	newProductID := productID(product)
	if !uuidPtrEqual(newProductID, track.ProductID) {
		if err := validateUserPermission(user, configs.PermTrackUpdateProduct); err != nil {
			return err
		}
		track.ProductID = newProductID
		track.Product = product
	}

	// The UI restricts product choices per partner organization; ending up
	// here with a mismatch means corrupted configuration.
	if partnerOrganization != nil && product != nil && !partnerOrganization.OffersProduct(product.Name) {
		return apperrors.Invariantf("partner organization %q does not offer product %q",
			partnerOrganization.Name, product.Name)
	}
	return nil
}

func (s *TrackService) createSHVOIntake(ctx context.Context, repos trackTxRepos, track *models.Track) error {
	intakeType, err := repos.catalog.FindAppointmentTypeByName(ctx, models.AppointmentTypeSHVOIntake)
	if err != nil {
		return apperrors.Invariant("appointment type 'SHVO intake' is not seeded")
	}
	trackID := track.ID
	appointment := &models.Appointment{
		CaseID:            track.CaseID,
		AppointmentTypeID: intakeType.ID,
		TrackID:           &trackID,
		Status:            models.AppointmentStatusOpen,
	}
	return repos.appointments.Create(ctx, appointment)
}

func organizationID(organization *models.PartnerOrganization) *uuid.UUID {
	if organization == nil {
		return nil
	}
	id := organization.ID
	return &id
}

func productID(product *models.Product) *uuid.UUID {
	if product == nil {
		return nil
	}
	id := product.ID
	return &id
}

func categoryID(category *models.ProductCategory) *uuid.UUID {
	if category == nil {
		return nil
	}
	id := category.ID
	return &id
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

var _ ITrackService = (*TrackService)(nil)
