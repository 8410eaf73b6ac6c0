package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"registrations/models"
	"registrations/utils/credentials"
	"registrations/utils/permissions"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	organizer = permissions.Claims{Subject: uuid.New(), Role: models.RoleOrganizer}
	u1Chef    = permissions.Claims{Subject: uuid.New(), Role: models.RoleChef, University: models.UniversityMcGill.Ptr()}
	u2Chef    = permissions.Claims{Subject: uuid.New(), Role: models.RoleChef, University: models.UniversityLaval.Ptr()}
)

var ada = models.MinimalParticipant{
	FirstName:   "Ada",
	LastName:    "L",
	Email:       "a@x.com",
	Competition: models.CompetitionSeniorDesign,
	Role:        models.RoleParticipant,
}

// forbiddenStore fails the test on any call, denials must never reach the store
type forbiddenStore struct{ t *testing.T }

func (s forbiddenStore) fail() { s.t.Fatal("store must not be reached") }
func (s forbiddenStore) ListPreview(context.Context, permissions.Filter) ([]models.ParticipantPreview, error) {
	s.fail()
	return nil, nil
}
func (s forbiddenStore) ListByAffiliation(context.Context, models.University) ([]models.ParticipantPreview, error) {
	s.fail()
	return nil, nil
}
func (s forbiddenStore) GetByID(context.Context, uuid.UUID, permissions.Filter) (*models.Participant, error) {
	s.fail()
	return nil, nil
}
func (s forbiddenStore) FindByEmail(context.Context, string) (*models.Participant, error) {
	s.fail()
	return nil, nil
}
func (s forbiddenStore) Create(context.Context, models.MinimalParticipant, models.University, credentials.Credential) error {
	s.fail()
	return nil
}
func (s forbiddenStore) Delete(context.Context, uuid.UUID, permissions.Filter) error {
	s.fail()
	return nil
}

// failingCreateStore wraps a real store and rejects inserts
type failingCreateStore struct {
	Store
	err error
}

func (s failingCreateStore) Create(context.Context, models.MinimalParticipant, models.University, credentials.Credential) error {
	return s.err
}

type failingIssuer struct{}

func (failingIssuer) Issue() (credentials.Credential, error) {
	return credentials.Credential{}, credentials.ErrIssuance
}

type recordingDelivery struct {
	err       error
	delivered map[string]string
	onDeliver func()
}

func (d *recordingDelivery) DeliverCredentials(_ context.Context, recipient models.MinimalParticipant, password string) error {
	if d.onDeliver != nil {
		d.onDeliver()
	}
	if d.err != nil {
		return d.err
	}
	if d.delivered == nil {
		d.delivered = make(map[string]string)
	}
	d.delivered[recipient.Email] = password
	return nil
}

func newTestService(t *testing.T, opts ...ServiceOption) (*ParticipantService, *ParticipantStore) {
	t.Helper()
	store := NewParticipantStore(newTestDB(t))
	return NewParticipantService(store, newTestIssuer(42), models.UniversityUnassigned, opts...), store
}

func TestCreateProvisionsAccount(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	svc, store := newTestService(t, WithLogger(logger))
	ctx := context.Background()

	provisioned, err := svc.Create(ctx, organizer, ada)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(provisioned.Password), 16)
	assert.Equal(t, ada.Email, provisioned.Email)

	got, err := store.GetByID(ctx, provisioned.ID, permissions.Filter{})
	require.NoError(t, err)
	assert.Equal(t, ada, got.Minimal())
	assert.NotEmpty(t, got.PasswordHash)
	assert.NotContains(t, got.PasswordHash, provisioned.Password)
	assert.Nil(t, got.MedicalConditions)
	assert.Nil(t, got.EmergencyContact)
	assert.Nil(t, got.StudyProof)
	assert.Nil(t, got.Photo)
	assert.Nil(t, got.CV)
	require.NotNil(t, got.University)
	assert.Equal(t, models.UniversityUnassigned, *got.University)

	ok, err := credentials.Verify(got.PasswordHash, provisioned.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	// The cleartext secret never reaches the logs
	require.NotEmpty(t, hook.AllEntries())
	for _, entry := range hook.AllEntries() {
		line, err := entry.String()
		require.NoError(t, err)
		assert.NotContains(t, line, provisioned.Password)
	}
}

func TestCreateByChefUsesDefaultUniversity(t *testing.T) {
	svc, store := newTestService(t)
	provisioned, err := svc.Create(context.Background(), u1Chef, ada)
	require.NoError(t, err)

	got, err := store.GetByID(context.Background(), provisioned.ID, permissions.Filter{})
	require.NoError(t, err)
	assert.Equal(t, models.UniversityUnassigned, *got.University)
}

func TestCreateDuplicateEmailFails(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), organizer, ada)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), organizer, ada)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestChefCannotProvisionPrivilegedRoles(t *testing.T) {
	// Refused before issuance: the failing issuer would otherwise surface ErrCredentialIssuance
	svc := NewParticipantService(forbiddenStore{t}, failingIssuer{}, models.UniversityUnassigned)
	for _, role := range []models.Role{models.RoleOrganizer, models.RoleChef, models.RoleVolunteer} {
		escalated := ada
		escalated.Role = role
		provisioned, err := svc.Create(context.Background(), u1Chef, escalated)
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
		assert.Empty(t, provisioned.Password)
	}
}

func TestOrganizerProvisionsAnyRole(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	lead := ada
	lead.Role = models.RoleChef
	provisioned, err := svc.Create(ctx, organizer, lead)
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, lead.Email, provisioned.Password)
	require.NoError(t, err)
	assert.Equal(t, models.RoleChef, got.Role)
}

func TestChefImportSkipsPrivilegedRows(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	boss := models.MinimalParticipant{FirstName: "Boss", LastName: "B", Email: "boss@x.com", Competition: models.CompetitionDebate, Role: models.RoleOrganizer}

	provisioned, err := svc.Import(ctx, u1Chef, []models.MinimalParticipant{boss, ada})
	require.Len(t, provisioned, 1)
	assert.Equal(t, ada.Email, provisioned[0].Email)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 1, rowErr.Row)
	assert.ErrorIs(t, rowErr, ErrForbidden)

	_, err = store.FindByEmail(ctx, boss.Email)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestService(t)
	bad := ada
	bad.Role = "admin"

	_, err := svc.Create(context.Background(), organizer, bad)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeniedOperationsNeverTouchStore(t *testing.T) {
	svc := NewParticipantService(forbiddenStore{t}, failingIssuer{}, models.UniversityUnassigned)
	ctx := context.Background()
	participant := permissions.Claims{Subject: uuid.New(), Role: models.RoleParticipant, University: models.UniversityETS.Ptr()}

	_, err := svc.ListPreview(ctx, participant)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.ExportPreview(ctx, participant)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Create(ctx, participant, ada)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Import(ctx, participant, []models.MinimalParticipant{ada})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, participant, uuid.New()), ErrForbidden)
	_, err = svc.ListUniversity(ctx, u1Chef, models.UniversityLaval)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(ctx, permissions.Claims{Role: models.RoleVolunteer}, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateFailsWhenIssuanceFails(t *testing.T) {
	svc := NewParticipantService(forbiddenStore{t}, failingIssuer{}, models.UniversityUnassigned)

	provisioned, err := svc.Create(context.Background(), organizer, ada)
	assert.ErrorIs(t, err, ErrCredentialIssuance)
	assert.Empty(t, provisioned.Password)
}

func TestCreateDiscardsSecretWhenInsertFails(t *testing.T) {
	store := NewParticipantStore(newTestDB(t))
	insertErr := errors.New("disk full")
	delivery := &recordingDelivery{}
	svc := NewParticipantService(failingCreateStore{Store: store, err: insertErr}, newTestIssuer(1), models.UniversityUnassigned, WithDelivery(delivery))

	provisioned, err := svc.Create(context.Background(), organizer, ada)
	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, Provisioned{}, provisioned)
	assert.Empty(t, delivery.delivered)
}

func TestCreateDeliversPassword(t *testing.T) {
	delivery := &recordingDelivery{}
	svc, _ := newTestService(t, WithDelivery(delivery))

	provisioned, err := svc.Create(context.Background(), organizer, ada)
	require.NoError(t, err)
	assert.Equal(t, provisioned.Password, delivery.delivered[ada.Email])
}

func TestCreateRemovesRowWhenDeliveryFails(t *testing.T) {
	svc, store := newTestService(t, WithDelivery(&recordingDelivery{err: errors.New("smtp down")}))
	ctx := context.Background()

	provisioned, err := svc.Create(ctx, organizer, ada)
	assert.ErrorIs(t, err, ErrCredentialDelivery)
	assert.Empty(t, provisioned.Password)

	_, err = store.FindByEmail(ctx, ada.Email)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRemovesRowWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, store := newTestService(t, WithDelivery(&recordingDelivery{onDeliver: cancel}))

	_, err := svc.Create(ctx, organizer, ada)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.FindByEmail(context.Background(), ada.Email)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteScenario(t *testing.T) {
	svc, store := newTestService(t)
	db := store.db
	ctx := context.Background()

	// Organizer deletes regardless of university
	p0 := seedParticipant(t, db, models.RoleParticipant, models.UniversityConcordia.Ptr())
	require.NoError(t, svc.Delete(ctx, organizer, p0.ID))
	assert.False(t, exists(t, db, p0.ID))

	// P1 belongs to U1
	p1 := seedParticipant(t, db, models.RoleParticipant, models.UniversityMcGill.Ptr())

	err := svc.Delete(ctx, u2Chef, p1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, exists(t, db, p1.ID))

	require.NoError(t, svc.Delete(ctx, u1Chef, p1.ID))

	_, err = svc.Get(ctx, organizer, p1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), organizer, uuid.New()), ErrNotFound)
}

func TestListPreviewScopes(t *testing.T) {
	svc, store := newTestService(t)
	db := store.db
	ctx := context.Background()

	mine := seedParticipant(t, db, models.RoleParticipant, models.UniversityMcGill.Ptr(), withCV([]byte("cv")))
	seedParticipant(t, db, models.RoleVolunteer, models.UniversityMcGill.Ptr())
	seedParticipant(t, db, models.RoleParticipant, models.UniversityLaval.Ptr())

	all, err := svc.ListPreview(ctx, organizer)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.ListPreview(ctx, u1Chef)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, mine.ID, scoped[0].ID)
	assert.True(t, scoped[0].ContainCV)

	exported, err := svc.ExportPreview(ctx, u1Chef)
	require.NoError(t, err)
	assert.Equal(t, scoped, exported)
}

func TestListUniversity(t *testing.T) {
	svc, store := newTestService(t)
	db := store.db
	ctx := context.Background()

	seedParticipant(t, db, models.RoleParticipant, models.UniversityMcGill.Ptr())
	seedParticipant(t, db, models.RoleVolunteer, models.UniversityMcGill.Ptr())
	seedParticipant(t, db, models.RoleParticipant, models.UniversityLaval.Ptr())

	previews, err := svc.ListUniversity(ctx, organizer, models.UniversityMcGill)
	require.NoError(t, err)
	assert.Len(t, previews, 2)

	previews, err = svc.ListUniversity(ctx, u1Chef, models.UniversityMcGill)
	require.NoError(t, err)
	assert.Len(t, previews, 1)
}

func TestGetFullRecordScopes(t *testing.T) {
	svc, store := newTestService(t)
	db := store.db
	ctx := context.Background()

	p := seedParticipant(t, db, models.RoleParticipant, models.UniversityMcGill.Ptr(), withCV([]byte("resume")))

	got, err := svc.Get(ctx, u1Chef, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Attachment("resume"), got.CV)

	_, err = svc.Get(ctx, u2Chef, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	self := permissions.Claims{Subject: p.ID, Role: models.RoleParticipant}
	got, err = svc.Get(ctx, self, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	other := permissions.Claims{Subject: uuid.New(), Role: models.RoleParticipant}
	_, err = svc.Get(ctx, other, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportReportsFailedRows(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	grace := models.MinimalParticipant{FirstName: "Grace", LastName: "H", Email: "g@x.com", Competition: models.CompetitionDebate, Role: models.RoleParticipant}
	invalid := models.MinimalParticipant{FirstName: "Bad", LastName: "Row", Email: "bad@x.com", Competition: "chess", Role: models.RoleParticipant}

	provisioned, err := svc.Import(ctx, organizer, []models.MinimalParticipant{ada, invalid, grace})
	require.Len(t, provisioned, 2)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 1)
	assert.ErrorIs(t, merr.Errors[0], ErrValidation)
	assert.True(t, strings.Contains(merr.Errors[0].Error(), "row 2"))
	var rowErr *RowError
	require.True(t, errors.As(merr.Errors[0], &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, invalid.Email, rowErr.Email)

	for _, p := range provisioned {
		got, err := store.FindByEmail(ctx, p.Email)
		require.NoError(t, err)
		ok, err := credentials.Verify(got.PasswordHash, p.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestImportRejectsEmptyBatch(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Import(context.Background(), organizer, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	provisioned, err := svc.Create(ctx, organizer, ada)
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, ada.Email, provisioned.Password)
	require.NoError(t, err)
	assert.Equal(t, provisioned.ID, got.ID)

	_, err = svc.Authenticate(ctx, ada.Email, "wrong-password-123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@x.com", provisioned.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
