package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/queryparams"
	"ondernemercentraal.nl/repositories"
)

// In-memory repository fakes. They implement just enough behavior for the
// service scenarios; anything not stored returns repositories.ErrNotFound.

type fakeAvailabilityRepo struct {
	data  *repositories.AvailabilityData
	dated map[string]*models.AvailabilityDefinition
}

func newFakeAvailabilityRepo(data *repositories.AvailabilityData) *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{data: data, dated: map[string]*models.AvailabilityDefinition{}}
}

func (f *fakeAvailabilityRepo) GetAvailabilityData(_ context.Context, _, _ time.Time) (*repositories.AvailabilityData, error) {
	return f.data, nil
}

func (f *fakeAvailabilityRepo) GetAvailabilityDataLocked(ctx context.Context, startDate, endDate time.Time) (*repositories.AvailabilityData, error) {
	return f.GetAvailabilityData(ctx, startDate, endDate)
}

func (f *fakeAvailabilityRepo) FindDatedByDate(_ context.Context, date time.Time) (*models.AvailabilityDefinition, error) {
	if definition, ok := f.dated[date.Format("2006-01-02")]; ok {
		return definition, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAvailabilityRepo) CreateDefinition(_ context.Context, definition *models.AvailabilityDefinition) error {
	definition.ID = uuid.New()
	if definition.Date != nil {
		f.dated[definition.Date.Format("2006-01-02")] = definition
	}
	return nil
}

func (f *fakeAvailabilityRepo) SaveDefinition(_ context.Context, definition *models.AvailabilityDefinition) error {
	if definition.Date != nil {
		f.dated[definition.Date.Format("2006-01-02")] = definition
	}
	return nil
}

type fakeCatalogRepo struct {
	appointmentTypes     map[string]*models.AppointmentType
	trackTypes           map[string]*models.TrackType
	partnerOrganizations map[string]*models.PartnerOrganization
	products             map[string]*models.Product
	categories           map[string]*models.ProductCategory
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		appointmentTypes:     map[string]*models.AppointmentType{},
		trackTypes:           map[string]*models.TrackType{},
		partnerOrganizations: map[string]*models.PartnerOrganization{},
		products:             map[string]*models.Product{},
		categories:           map[string]*models.ProductCategory{},
	}
}

func (f *fakeCatalogRepo) FindAppointmentTypeByName(_ context.Context, name string) (*models.AppointmentType, error) {
	if appointmentType, ok := f.appointmentTypes[name]; ok {
		return appointmentType, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) FindTrackTypeByName(_ context.Context, name string) (*models.TrackType, error) {
	if trackType, ok := f.trackTypes[name]; ok {
		return trackType, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) FindPartnerOrganizationByName(_ context.Context, name string) (*models.PartnerOrganization, error) {
	if organization, ok := f.partnerOrganizations[name]; ok {
		return organization, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) FindProductByName(_ context.Context, name string) (*models.Product, error) {
	if product, ok := f.products[name]; ok {
		return product, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) FindProductCategoryByName(_ context.Context, name string) (*models.ProductCategory, error) {
	if category, ok := f.categories[name]; ok {
		return category, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) FindAllPartnerOrganizations(_ context.Context) ([]models.PartnerOrganization, error) {
	var organizations []models.PartnerOrganization
	for _, organization := range f.partnerOrganizations {
		organizations = append(organizations, *organization)
	}
	return organizations, nil
}

type fakeTrackRepo struct {
	tracks map[uuid.UUID]*models.Track
}

func newFakeTrackRepo() *fakeTrackRepo {
	return &fakeTrackRepo{tracks: map[uuid.UUID]*models.Track{}}
}

func (f *fakeTrackRepo) Create(_ context.Context, track *models.Track) error {
	track.ID = uuid.New()
	f.tracks[track.ID] = track
	return nil
}

func (f *fakeTrackRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Track, error) {
	if track, ok := f.tracks[id]; ok {
		return track, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTrackRepo) FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Track, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeTrackRepo) FindAllByCase(_ context.Context, caseID uuid.UUID) ([]models.Track, error) {
	var tracks []models.Track
	for _, track := range f.tracks {
		if track.CaseID == caseID {
			tracks = append(tracks, *track)
		}
	}
	return tracks, nil
}

func (f *fakeTrackRepo) Update(_ context.Context, track *models.Track) error {
	f.tracks[track.ID] = track
	return nil
}

type fakeTaskRepo struct {
	created []*models.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = uuid.New()
	f.created = append(f.created, task)
	return nil
}

func (f *fakeTaskRepo) FindAllPaginated(_ context.Context, _ queryparams.ListParams) ([]models.Task, int64, error) {
	var tasks []models.Task
	for _, task := range f.created {
		tasks = append(tasks, *task)
	}
	return tasks, int64(len(tasks)), nil
}

func (f *fakeTaskRepo) FindAllByCase(_ context.Context, caseID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	for _, task := range f.created {
		if task.CaseID == caseID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*models.Appointment
	created      []*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uuid.UUID]*models.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	appointment.ID = uuid.New()
	f.appointments[appointment.ID] = appointment
	f.created = append(f.created, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if appointment, ok := f.appointments[id]; ok {
		return appointment, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAppointmentRepo) FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeAppointmentRepo) FindAllByCasePaginated(_ context.Context, caseID uuid.UUID, _ queryparams.ListParams) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.CaseID == caseID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, int64(len(appointments)), nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appointment *models.Appointment) error {
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, appointment *models.Appointment) error {
	delete(f.appointments, appointment.ID)
	return nil
}

type fakeCaseRepo struct {
	cases map[uuid.UUID]*models.Case
}

func newFakeCaseRepo(cases ...*models.Case) *fakeCaseRepo {
	repo := &fakeCaseRepo{cases: map[uuid.UUID]*models.Case{}}
	for _, dossier := range cases {
		repo.cases[dossier.ID] = dossier
	}
	return repo
}

func (f *fakeCaseRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Case, error) {
	if dossier, ok := f.cases[id]; ok {
		return dossier, nil
	}
	return nil, repositories.ErrNotFound
}

type fakeNotifier struct {
	clientMails  []string
	partnerMails []string
	userMails    []string
}

func (f *fakeNotifier) NotifyClient(_ *models.Client, subject string, _ []string) {
	f.clientMails = append(f.clientMails, subject)
}

func (f *fakeNotifier) NotifyPartnerOrganization(_ *models.PartnerOrganization, subject string, _ []string) {
	f.partnerMails = append(f.partnerMails, subject)
}

func (f *fakeNotifier) NotifyUser(_ *models.User, subject string, _ []string) {
	f.userMails = append(f.userMails, subject)
}

var (
	_ repositories.IAvailabilityRepository = (*fakeAvailabilityRepo)(nil)
	_ repositories.ICatalogRepository      = (*fakeCatalogRepo)(nil)
	_ repositories.ITrackRepository        = (*fakeTrackRepo)(nil)
	_ repositories.ITaskRepository         = (*fakeTaskRepo)(nil)
	_ repositories.IAppointmentRepository  = (*fakeAppointmentRepo)(nil)
	_ repositories.ICaseRepository         = (*fakeCaseRepo)(nil)
	_ INotifier                            = (*fakeNotifier)(nil)
)
