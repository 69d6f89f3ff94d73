package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/queryparams"
	"ondernemercentraal.nl/pkg/timeslot"
	"ondernemercentraal.nl/repositories"
)

var (
	ErrAppointmentNotFound = apperrors.NotFound("Gesprek niet gevonden.")
	// Deleting a track-bound appointment would leave the track without its
	// intake; the track itself has to go first.
	ErrAppointmentBoundToTrack = apperrors.UserInput("Een gesprek dat bij een traject hoort kan niet los worden verwijderd.")
)

// AppointmentInput is the create/update payload for an appointment.
type AppointmentInput struct {
	StartTime               *time.Time `json:"start_time"`
	EndTime                 *time.Time `json:"end_time"`
	AppointmentTypeName     string     `json:"appointment_type_name"`
	PartnerOrganizationName *string    `json:"partner_organization_name"`
	Status                  string     `json:"status"`
}

// IAppointmentService manages appointments on a case: booking, rescheduling,
// status changes and the notifications those produce.
type IAppointmentService interface {
	GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	GetAppointmentsForCase(ctx context.Context, caseID uuid.UUID, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateAppointment(ctx context.Context, user *models.User, caseID uuid.UUID, input AppointmentInput) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, user *models.User, id uuid.UUID, input AppointmentInput) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, user *models.User, id uuid.UUID) error
}

type AppointmentService struct {
	db       *gorm.DB
	repo     repositories.IAppointmentRepository
	notifier INotifier
}

func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		db:       configs.GetDB(),
		repo:     repositories.NewAppointmentRepository(),
		notifier: NewMailNotifier(),
	}
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetAppointmentsForCase(ctx context.Context, caseID uuid.UUID, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	appointments, totalCount, err := s.repo.FindAllByCasePaginated(ctx, caseID, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: appointments,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, user *models.User, caseID uuid.UUID, input AppointmentInput) (*models.Appointment, error) {
	var created *models.Appointment
	var notifications []Notification

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newAppointmentTxRepos(tx)

		dossier, err := repos.cases.FindByID(ctx, caseID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCaseNotFound
			}
			return err
		}

		created, notifications, err = s.createAppointment(ctx, repos, dossier, input)
		return err
	})
	if txErr != nil {
		configslog.Log.Error("CreateAppointment transaction failed", zap.String("caseID", caseID.String()), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Gesprek aangemaakt: %s (type %s, dossier %s).", created.ID, created.AppointmentTypeName(), caseID)
	DispatchNotifications(s.notifier, notifications)
	return created, nil
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, user *models.User, id uuid.UUID, input AppointmentInput) (*models.Appointment, error) {
	var updated *models.Appointment
	var notifications []Notification

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newAppointmentTxRepos(tx)

		appointment, err := repos.appointments.FindByIDLocked(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		notifications, err = s.updateAppointment(ctx, repos, user, appointment, input)
		if err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("UpdateAppointment transaction failed", zap.String("id", id.String()), zap.Error(txErr))
		return nil, txErr
	}

	DispatchNotifications(s.notifier, notifications)
	return updated, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, user *models.User, id uuid.UUID) error {
	if err := validateUserPermission(user, configs.PermAppointmentUpdate); err != nil {
		return err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewAppointmentRepositoryTx(tx)

		appointment, err := repo.FindByIDLocked(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.TrackID != nil {
			return ErrAppointmentBoundToTrack
		}
		return repo.Delete(ctx, appointment)
	})
	if txErr != nil {
		configslog.Log.Error("DeleteAppointment transaction failed", zap.String("id", id.String()), zap.Error(txErr))
		return txErr
	}

	configslog.SLog.Infof("Gesprek verwijderd: %s.", id)
	return nil
}

type appointmentTxRepos struct {
	appointments repositories.IAppointmentRepository
	availability repositories.IAvailabilityRepository
	catalog      repositories.ICatalogRepository
	cases        repositories.ICaseRepository
}

func newAppointmentTxRepos(tx *gorm.DB) appointmentTxRepos {
	return appointmentTxRepos{
		appointments: repositories.NewAppointmentRepositoryTx(tx),
		availability: repositories.NewAvailabilityRepositoryTx(tx),
		catalog:      repositories.NewCatalogRepositoryTx(tx),
		cases:        repositories.NewCaseRepositoryTx(tx),
	}
}

// createAppointment books a new appointment on the given case. Checkgesprekken
// re-validate their slot against row-locked availability data, so a slot that
// filled up after it was listed is rejected here rather than overbooked.
func (s *AppointmentService) createAppointment(ctx context.Context, repos appointmentTxRepos, dossier *models.Case, input AppointmentInput) (*models.Appointment, []Notification, error) {
	if err := validateTimesPair(input.StartTime, input.EndTime); err != nil {
		return nil, nil, err
	}

	appointmentType, err := s.lookupAppointmentType(ctx, repos, input.AppointmentTypeName)
	if err != nil {
		return nil, nil, err
	}

	if input.StartTime != nil && appointmentType.Name == models.AppointmentTypeCheckgesprek {
		if err := s.validateCheckgesprekSlot(ctx, repos, *input.StartTime, *input.EndTime); err != nil {
			return nil, nil, err
		}
	}

	partnerOrganization, err := s.lookupPartnerOrganization(ctx, repos, input.PartnerOrganizationName)
	if err != nil {
		return nil, nil, err
	}
	if err := assertOrganizationOffersType(partnerOrganization, appointmentType.Name); err != nil {
		return nil, nil, err
	}

	status := input.Status
	if status == "" {
		status = models.AppointmentStatusOpen
	}
	if !models.IsValidAppointmentStatus(status) {
		return nil, nil, apperrors.UserInputf("Gesprekstatus '%s' is ongeldig.", status)
	}

	appointment := &models.Appointment{
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		CaseID:                dossier.ID,
		Case:                  dossier,
		AppointmentTypeID:     appointmentType.ID,
		AppointmentType:       appointmentType,
		PartnerOrganizationID: organizationID(partnerOrganization),
		PartnerOrganization:   partnerOrganization,
		Status:                status,
	}
	if err := repos.appointments.Create(ctx, appointment); err != nil {
		return nil, nil, err
	}

	var notifications []Notification
	if partnerOrganization != nil {
		notifications = append(notifications, buildPartnerAssignmentNotification(appointment))
	}
	if appointment.StartTime != nil {
		notifications = append(notifications, buildClientConfirmationNotification(appointment))
	}
	return appointment, notifications, nil
}

// updateAppointment applies a full update payload to a locked appointment.
// Each kind of change carries its own permission requirement and produces its
// own notification; the collected notifications go out only after commit.
func (s *AppointmentService) updateAppointment(ctx context.Context, repos appointmentTxRepos, user *models.User, appointment *models.Appointment, input AppointmentInput) ([]Notification, error) {
	if err := validateTimesPair(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	currentTypeName := appointment.AppointmentTypeName()
	if currentTypeName == models.AppointmentTypeSHVOIntake && input.AppointmentTypeName != models.AppointmentTypeSHVOIntake {
		return nil, apperrors.UserInputf("Een gesprek met type '%s' kan niet van type worden gewijzigd.", models.AppointmentTypeSHVOIntake)
	}

	appointmentType, err := s.lookupAppointmentType(ctx, repos, input.AppointmentTypeName)
	if err != nil {
		return nil, err
	}

	startChanged := !timePtrEqual(appointment.StartTime, input.StartTime)
	endChanged := !timePtrEqual(appointment.EndTime, input.EndTime)

	// Rescheduling a Checkgesprek competes for capacity like a fresh booking.
	if (startChanged || endChanged) && input.StartTime != nil && appointmentType.Name == models.AppointmentTypeCheckgesprek {
		if err := s.validateCheckgesprekSlot(ctx, repos, *input.StartTime, *input.EndTime); err != nil {
			return nil, err
		}
	}

	if startChanged || endChanged {
		if err := validateUserPermission(user, dateChangePermission(currentTypeName)); err != nil {
			return nil, err
		}
		appointment.StartTime = input.StartTime
		appointment.EndTime = input.EndTime
	}

	appointment.AppointmentTypeID = appointmentType.ID
	appointment.AppointmentType = appointmentType

	var notifications []Notification
	if input.Status != "" && input.Status != appointment.Status {
		if !models.IsValidAppointmentStatus(input.Status) {
			return nil, apperrors.UserInputf("Gesprekstatus '%s' is ongeldig.", input.Status)
		}
		if err := validateUserPermission(user, statusChangePermission(appointmentType.Name)); err != nil {
			return nil, err
		}
		appointment.Status = input.Status
		notifications = append(notifications, buildStatusChangeNotifications(appointment)...)
	}

	partnerOrganization, err := s.lookupPartnerOrganization(ctx, repos, input.PartnerOrganizationName)
	if err != nil {
		return nil, err
	}
	newOrganizationID := organizationID(partnerOrganization)
	if !uuidPtrEqual(newOrganizationID, appointment.PartnerOrganizationID) {
		if err := validateUserPermission(user, configs.PermAppointmentUpdate); err != nil {
			return nil, err
		}
		if err := assertOrganizationOffersType(partnerOrganization, appointmentType.Name); err != nil {
			return nil, err
		}
		appointment.PartnerOrganizationID = newOrganizationID
		appointment.PartnerOrganization = partnerOrganization
		if partnerOrganization != nil {
			notifications = append(notifications, buildPartnerAssignmentNotification(appointment))
		}
	}

	if startChanged && appointment.StartTime != nil {
		notifications = append(notifications, buildClientConfirmationNotification(appointment))
	}

	if err := repos.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return notifications, nil
}

// validateTimesPair rejects a half-filled interval. Both times empty is fine:
// an appointment can exist before it is scheduled.
func validateTimesPair(start, end *time.Time) error {
	if (start == nil) != (end == nil) {
		return apperrors.UserInput("Begin- en eindtijd moeten beide ingevuld of beide leeg zijn.")
	}
	if start != nil && !end.After(*start) {
		return apperrors.UserInput("De eindtijd moet na de begintijd liggen.")
	}
	return nil
}

func (s *AppointmentService) validateCheckgesprekSlot(ctx context.Context, repos appointmentTxRepos, start, end time.Time) error {
	data, err := repos.availability.GetAvailabilityDataLocked(ctx, timeslot.DayStart(start), timeslot.DayStart(end))
	if err != nil {
		return err
	}
	return validateSlotAvailability(data, start, end)
}

func (s *AppointmentService) lookupAppointmentType(ctx context.Context, repos appointmentTxRepos, name string) (*models.AppointmentType, error) {
	appointmentType, err := repos.catalog.FindAppointmentTypeByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.UserInputf("Gesprekstype '%s' is onbekend.", name)
		}
		return nil, err
	}
	return appointmentType, nil
}

func (s *AppointmentService) lookupPartnerOrganization(ctx context.Context, repos appointmentTxRepos, name *string) (*models.PartnerOrganization, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	organization, err := repos.catalog.FindPartnerOrganizationByName(ctx, *name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Partnerorganisatie niet gevonden.")
		}
		return nil, err
	}
	return organization, nil
}

// assertOrganizationOffersType checks that the organization carries the
// product belonging to the appointment type. The UI only offers matching
// organizations, so a mismatch here means corrupted configuration.
func assertOrganizationOffersType(organization *models.PartnerOrganization, appointmentTypeName string) error {
	if organization == nil {
		return nil
	}
	required := models.RequiredProductName(appointmentTypeName)
	if required == "" {
		return nil
	}
	if !organization.OffersProduct(required) {
		return apperrors.Invariantf("partner organization %q does not offer product %q", organization.Name, required)
	}
	return nil
}

// dateChangePermission returns the permission needed to reschedule an
// appointment of the given type. Intakes and toekomstgesprekken are planned
// by Ondernemer Centraal staff and need the elevated permission.
func dateChangePermission(appointmentTypeName string) configs.Permission {
	switch appointmentTypeName {
	case models.AppointmentTypeSHVOIntake, models.AppointmentTypeToekomstgesprek:
		return configs.PermAppointmentUpdateDate
	}
	return configs.PermAppointmentUpdate
}

func statusChangePermission(appointmentTypeName string) configs.Permission {
	switch appointmentTypeName {
	case models.AppointmentTypeSHVOIntake, models.AppointmentTypeToekomstgesprek:
		return configs.PermAppointmentUpdateStatus
	}
	return configs.PermAppointmentUpdate
}

func buildStatusChangeNotifications(appointment *models.Appointment) []Notification {
	content := []string{fmt.Sprintf("De status van uw gesprek '%s' is gewijzigd naar '%s'.",
		appointment.AppointmentTypeName(), appointment.Status)}

	var notifications []Notification
	if appointment.Case != nil && appointment.Case.Client != nil {
		notifications = append(notifications, Notification{
			Client:  appointment.Case.Client,
			Subject: "Gesprekstatus gewijzigd",
			Content: content,
		})
	}
	if appointment.Case == nil || appointment.Case.Advisor == nil {
		configslog.SLog.Warnf("Gesprek %s heeft geen adviseur; statusnotificatie aan adviseur overgeslagen.", appointment.ID)
		return notifications
	}
	return append(notifications, Notification{
		User:    appointment.Case.Advisor,
		Subject: "Gesprekstatus gewijzigd",
		Content: []string{fmt.Sprintf("De status van gesprek '%s' in dossier van uw ondernemer is gewijzigd naar '%s'.",
			appointment.AppointmentTypeName(), appointment.Status)},
	})
}

func buildPartnerAssignmentNotification(appointment *models.Appointment) Notification {
	typeName := appointment.AppointmentTypeName()
	return Notification{
		PartnerOrganization: appointment.EffectivePartnerOrganization(),
		Subject:             fmt.Sprintf("Gesprek met type '%s' aangemaakt", typeName),
		Content: []string{fmt.Sprintf(
			"Ondernemer Centraal heeft uw organisatie toegewezen aan een gesprek met type '%s'.", typeName)},
	}
}

func buildClientConfirmationNotification(appointment *models.Appointment) Notification {
	var client *models.Client
	if appointment.Case != nil {
		client = appointment.Case.Client
	}
	return Notification{
		Client:  client,
		Subject: fmt.Sprintf("Gesprek ingepland (%s)", appointment.AppointmentTypeName()),
		Content: appointment.ConfirmationMailContent(),
	}
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

var _ IAppointmentService = (*AppointmentService)(nil)
