package handler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/middleware"
	"medisync-api/internal/model"
	"medisync-api/internal/notify"
	"medisync-api/internal/session"
	"medisync-api/internal/store"
)

// Store is the persistence the service needs. *store.Store implements it.
type Store interface {
	Register(ctx context.Context, reg store.Registration) (*model.User, error)
	AccountByEmail(ctx context.Context, email string) (*model.Account, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, userID int64) (*model.User, error)

	Profile(ctx context.Context, role model.Role, id int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) error

	SearchMedicines(ctx context.Context, query string) ([]model.Medicine, error)
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	Medicine(ctx context.Context, id int64) (*model.Medicine, error)
	AddMedicine(ctx context.Context, m *model.Medicine) error
	MedicinesByPharmacy(ctx context.Context, pharmacy string) ([]model.Medicine, error)
	SetAvailability(ctx context.Context, id int64, pharmacy string, available bool) error
	PharmacyName(ctx context.Context, pharmacistID int64) (string, error)

	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	Doctor(ctx context.Context, id int64) (*model.Doctor, error)
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentsByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error)
	AppointmentsByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error)
	CommitConfirmations(ctx context.Context, doctorID int64, cs []store.Confirmation) ([]model.Appointment, error)
}

type Sessions interface {
	Create(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

type Handler struct {
	pb.UnimplementedMediSyncServer
	store    Store
	sessions Sessions
	events   notify.Publisher
	secret   string
	log      zerolog.Logger
	now      func() time.Time
}

func New(st Store, sessions Sessions, events notify.Publisher, secret string, log zerolog.Logger) *Handler {
	if events == nil {
		events = notify.Nop{}
	}
	return &Handler{
		store:    st,
		sessions: sessions,
		events:   events,
		secret:   secret,
		log:      log,
		now:      time.Now,
	}
}

// logger prefers the request-scoped logger set by the logging interceptor.
func (h *Handler) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.log
}

func caller(ctx context.Context) (*session.Session, error) {
	sess, ok := middleware.SessionFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "not signed in")
	}
	return sess, nil
}

// callerAs is caller plus a role gate.
func callerAs(ctx context.Context, role model.Role) (*session.Session, error) {
	sess, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Role != role {
		return nil, status.Errorf(codes.PermissionDenied, "only a %s can do this", role)
	}
	return sess, nil
}
