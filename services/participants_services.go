package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"registrations/metrics"
	"registrations/models"
	"registrations/utils/credentials"
	"registrations/utils/permissions"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// CredentialIssuer mints the identifier, one-time password and hash of a new account
type CredentialIssuer interface {
	Issue() (credentials.Credential, error)
}

// CredentialDelivery hands a one-time password to its owner out of band
type CredentialDelivery interface {
	DeliverCredentials(ctx context.Context, recipient models.MinimalParticipant, password string) error
}

// RowError is one failed row of an import, Row counts from 1
type RowError struct {
	Row   int
	Email string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Email, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Provisioned is the result of a successful creation. Password is the only cleartext copy.
type Provisioned struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
}

// ParticipantService authorizes every participant operation before it reaches the store
type ParticipantService struct {
	store             Store
	issuer            CredentialIssuer
	delivery          CredentialDelivery
	defaultUniversity models.University
	log               logrus.FieldLogger
}

// ServiceOption configures a ParticipantService
type ServiceOption func(*ParticipantService)

// WithDelivery sends every issued password through d after the row is inserted
func WithDelivery(d CredentialDelivery) ServiceOption {
	return func(s *ParticipantService) {
		s.delivery = d
	}
}

func WithLogger(log logrus.FieldLogger) ServiceOption {
	return func(s *ParticipantService) {
		s.log = log
	}
}

// NewParticipantService wires the store and issuer. Every created row is assigned defaultUniversity.
func NewParticipantService(store Store, issuer CredentialIssuer, defaultUniversity models.University, opts ...ServiceOption) *ParticipantService {
	s := &ParticipantService{
		store:             store,
		issuer:            issuer,
		defaultUniversity: defaultUniversity,
		log:               logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// request tracks one operation through Received -> Authorizing -> Forbidden | Executing -> Succeeded | Failed
type request struct {
	op  permissions.Operation
	log logrus.FieldLogger
}

func (s *ParticipantService) receive(op permissions.Operation, claims permissions.Claims) *request {
	return &request{
		op: op,
		log: s.log.WithFields(logrus.Fields{
			"operation": string(op),
			"role":      string(claims.Role),
			"subject":   claims.Subject.String(),
		}),
	}
}

// authorize resolves the decision and records the Forbidden terminal state on denial
func (r *request) authorize(claims permissions.Claims, target *models.University) (permissions.Filter, error) {
	decision := permissions.Resolve(claims, r.op, target)
	if !decision.Allowed {
		return permissions.Filter{}, r.finish(ErrForbidden)
	}
	return decision.Filter, nil
}

// finish records the terminal state of the request and returns err unchanged
func (r *request) finish(err error) error {
	outcome := "succeeded"
	switch {
	case err == nil:
		r.log.Debug("Participant operation succeeded")
	case errors.Is(err, ErrForbidden):
		outcome = "forbidden"
		r.log.Info("Participant operation forbidden")
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		outcome = "failed"
		r.log.WithError(err).Info("Participant operation rejected")
	default:
		outcome = "failed"
		r.log.WithError(err).Error("Participant operation failed")
	}
	metrics.RecordParticipantOperation(string(r.op), outcome)
	return err
}

// ListPreview returns the previews visible to the caller
func (s *ParticipantService) ListPreview(ctx context.Context, claims permissions.Claims) ([]models.ParticipantPreview, error) {
	req := s.receive(permissions.ReadAll, claims)
	filter, err := req.authorize(claims, nil)
	if err != nil {
		return nil, err
	}
	previews, err := s.store.ListPreview(ctx, filter)
	return previews, req.finish(err)
}

// ExportPreview returns the same rows as ListPreview for spreadsheet export
func (s *ParticipantService) ExportPreview(ctx context.Context, claims permissions.Claims) ([]models.ParticipantPreview, error) {
	req := s.receive(permissions.Export, claims)
	filter, err := req.authorize(claims, nil)
	if err != nil {
		return nil, err
	}
	previews, err := s.store.ListPreview(ctx, filter)
	return previews, req.finish(err)
}

// ListUniversity returns the previews of one university's delegation
func (s *ParticipantService) ListUniversity(ctx context.Context, claims permissions.Claims, university models.University) ([]models.ParticipantPreview, error) {
	req := s.receive(permissions.ReadUniversity, claims)
	filter, err := req.authorize(claims, &university)
	if err != nil {
		return nil, err
	}

	var previews []models.ParticipantPreview
	if len(filter.Roles) == 0 && filter.ID == nil {
		previews, err = s.store.ListByAffiliation(ctx, university)
	} else {
		previews, err = s.store.ListPreview(ctx, filter)
	}
	return previews, req.finish(err)
}

// Get returns the full record of id when it is inside the caller's scope
func (s *ParticipantService) Get(ctx context.Context, claims permissions.Claims, id uuid.UUID) (*models.Participant, error) {
	req := s.receive(permissions.ReadOne, claims)
	filter, err := req.authorize(claims, nil)
	if err != nil {
		return nil, err
	}
	participant, err := s.store.GetByID(ctx, id, filter)
	return participant, req.finish(err)
}

// Create provisions a new account and returns its one-time password
func (s *ParticipantService) Create(ctx context.Context, claims permissions.Claims, minimal models.MinimalParticipant) (Provisioned, error) {
	req := s.receive(permissions.Create, claims)
	if _, err := req.authorize(claims, nil); err != nil {
		return Provisioned{}, err
	}
	provisioned, err := s.provision(ctx, req.log, claims, minimal)
	return provisioned, req.finish(err)
}

// Import provisions every row, failed rows are skipped and reported together
func (s *ParticipantService) Import(ctx context.Context, claims permissions.Claims, rows []models.MinimalParticipant) ([]Provisioned, error) {
	req := s.receive(permissions.Import, claims)
	if _, err := req.authorize(claims, nil); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, req.finish(fmt.Errorf("%w: no rows to import", ErrValidation))
	}

	var result *multierror.Error
	provisioned := make([]Provisioned, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}
		p, err := s.provision(ctx, req.log, claims, row)
		if err != nil {
			result = multierror.Append(result, &RowError{Row: i + 1, Email: row.Email, Err: err})
			continue
		}
		provisioned = append(provisioned, p)
	}

	err := result.ErrorOrNil()
	if len(provisioned) > 0 {
		// A partial import still succeeded for the rows it created
		req.finish(nil)
		return provisioned, err
	}
	return provisioned, req.finish(err)
}

// provision issues a credential, inserts the row and delivers the password.
// Any failure after the insert removes the row again so no hash outlives an undelivered secret.
func (s *ParticipantService) provision(ctx context.Context, log logrus.FieldLogger, claims permissions.Claims, minimal models.MinimalParticipant) (Provisioned, error) {
	if err := minimal.Validate(); err != nil {
		return Provisioned{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !permissions.CanAssignRole(claims.Role, minimal.Role) {
		return Provisioned{}, fmt.Errorf("%w: cannot assign role %s", ErrForbidden, minimal.Role)
	}

	start := time.Now()
	cred, err := s.issuer.Issue()
	metrics.CredentialIssuanceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Provisioned{}, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}
	metrics.CredentialsIssued.Inc()

	if err := s.store.Create(ctx, minimal, s.defaultUniversity, cred); err != nil {
		return Provisioned{}, err
	}

	if s.delivery != nil {
		if err := s.delivery.DeliverCredentials(ctx, minimal, cred.Password); err != nil {
			s.compensate(ctx, log, cred.ID)
			return Provisioned{}, fmt.Errorf("%w: %w", ErrCredentialDelivery, err)
		}
	}

	// The caller may have gone away while we were hashing or inserting
	if err := ctx.Err(); err != nil {
		s.compensate(ctx, log, cred.ID)
		return Provisioned{}, err
	}

	log.WithField("participant_id", cred.ID.String()).Info("Participant provisioned")
	return Provisioned{ID: cred.ID, Email: minimal.Email, Password: cred.Password}, nil
}

// compensate deletes a row whose credential never reached its owner
func (s *ParticipantService) compensate(ctx context.Context, log logrus.FieldLogger, id uuid.UUID) {
	if err := s.store.Delete(context.WithoutCancel(ctx), id, permissions.Filter{}); err != nil {
		log.WithError(err).WithField("participant_id", id.String()).Error("Failed to remove undelivered participant")
	}
}

// Delete removes id when it is inside the caller's scope
func (s *ParticipantService) Delete(ctx context.Context, claims permissions.Claims, id uuid.UUID) error {
	req := s.receive(permissions.Delete, claims)
	filter, err := req.authorize(claims, nil)
	if err != nil {
		return err
	}
	return req.finish(s.store.Delete(ctx, id, filter))
}

// Authenticate checks an email and password pair and returns the matching record
func (s *ParticipantService) Authenticate(ctx context.Context, email, password string) (*models.Participant, error) {
	participant, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := credentials.Verify(participant.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return participant, nil
}
