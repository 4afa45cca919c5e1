package handler_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"medisync-api/internal/model"
	"medisync-api/internal/notify"
	"medisync-api/internal/session"
	"medisync-api/internal/store"
)

// memStore is an in-memory Store. calls counts every method invocation so
// tests can assert validation happens before persistence.
type memStore struct {
	mu    sync.Mutex
	calls int

	nextID       int64
	accounts     map[string]*model.Account
	users        map[int64]*model.User
	patients     map[int64]*model.Patient
	doctors      map[int64]*model.Doctor
	pharmacists  map[int64]*model.Pharmacist
	medicines    map[int64]*model.Medicine
	appointments map[int64]*model.Appointment

	failRoleInsert bool
	failSet        map[int64]error
	createErr      error
	setOrder       []int64
}

func newMemStore() *memStore {
	return &memStore{
		nextID:       100,
		accounts:     map[string]*model.Account{},
		users:        map[int64]*model.User{},
		patients:     map[int64]*model.Patient{},
		doctors:      map[int64]*model.Doctor{},
		pharmacists:  map[int64]*model.Pharmacist{},
		medicines:    map[int64]*model.Medicine{},
		appointments: map[int64]*model.Appointment{},
		failSet:      map[int64]error{},
	}
}

func (m *memStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memStore) enter() func() {
	m.mu.Lock()
	m.calls++
	return m.mu.Unlock
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Register(_ context.Context, reg store.Registration) (*model.User, error) {
	defer m.enter()()
	email := reg.Profile.ContactEmail()
	if _, dup := m.accounts[email]; dup {
		return nil, fmt.Errorf("store: insert account: %w", store.ErrDuplicate)
	}
	if m.failRoleInsert {
		return nil, errors.New("store: insert role: connection reset")
	}
	id := m.id()
	switch p := reg.Profile.(type) {
	case *model.Patient:
		p.ID = id
		cp := *p
		m.patients[id] = &cp
	case *model.Doctor:
		p.ID = id
		cp := *p
		m.doctors[id] = &cp
	case *model.Pharmacist:
		p.ID = id
		cp := *p
		m.pharmacists[id] = &cp
	}
	u := &model.User{UserID: m.id(), ID: id, Email: email, Type: reg.Profile.Role()}
	m.users[u.UserID] = u
	m.accounts[email] = &model.Account{UID: fmt.Sprint(u.UserID), Email: email, PasswordHash: reg.PasswordHash, CreatedAt: time.Now()}
	cp := *u
	return &cp, nil
}

func (m *memStore) AccountByEmail(_ context.Context, email string) (*model.Account, error) {
	defer m.enter()()
	a, ok := m.accounts[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	defer m.enter()()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, userID int64) (*model.User, error) {
	defer m.enter()()
	u, ok := m.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) Profile(_ context.Context, role model.Role, id int64) (model.Profile, error) {
	defer m.enter()()
	switch role {
	case model.RolePatient:
		if p, ok := m.patients[id]; ok {
			cp := *p
			return &cp, nil
		}
	case model.RoleDoctor:
		if d, ok := m.doctors[id]; ok {
			cp := *d
			return &cp, nil
		}
	case model.RolePharmacist:
		if p, ok := m.pharmacists[id]; ok {
			cp := *p
			return &cp, nil
		}
	default:
		return nil, model.ErrInvalidRole
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UpdateProfile(_ context.Context, p model.Profile) error {
	defer m.enter()()
	switch p := p.(type) {
	case *model.Patient:
		old, ok := m.patients[p.ID]
		if !ok {
			return store.ErrNotFound
		}
		old.FirstName, old.LastName, old.Contact, old.Address = p.FirstName, p.LastName, p.Contact, p.Address
	case *model.Doctor:
		old, ok := m.doctors[p.ID]
		if !ok {
			return store.ErrNotFound
		}
		old.Name, old.ClinicLocation, old.Contact, old.Specialization = p.Name, p.ClinicLocation, p.Contact, p.Specialization
	case *model.Pharmacist:
		old, ok := m.pharmacists[p.ID]
		if !ok {
			return store.ErrNotFound
		}
		old.Name, old.PharmacyName, old.Address, old.Phone = p.Name, p.PharmacyName, p.Address, p.Phone
	}
	return nil
}

func (m *memStore) sortedMedicines(keep func(*model.Medicine) bool) []model.Medicine {
	out := []model.Medicine{}
	for _, med := range m.medicines {
		if keep(med) {
			out = append(out, *med)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (m *memStore) SearchMedicines(_ context.Context, q string) ([]model.Medicine, error) {
	defer m.enter()()
	return m.sortedMedicines(func(med *model.Medicine) bool {
		return contains(med.MedicineName, q) || contains(med.Ingredients, q)
	}), nil
}

func (m *memStore) ListMedicines(context.Context) ([]model.Medicine, error) {
	defer m.enter()()
	return m.sortedMedicines(func(*model.Medicine) bool { return true }), nil
}

func (m *memStore) Medicine(_ context.Context, id int64) (*model.Medicine, error) {
	defer m.enter()()
	med, ok := m.medicines[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *med
	return &cp, nil
}

func (m *memStore) AddMedicine(_ context.Context, med *model.Medicine) error {
	defer m.enter()()
	med.ID = m.id()
	cp := *med
	m.medicines[med.ID] = &cp
	return nil
}

func (m *memStore) MedicinesByPharmacy(_ context.Context, pharmacy string) ([]model.Medicine, error) {
	defer m.enter()()
	return m.sortedMedicines(func(med *model.Medicine) bool { return contains(med.PharmacyName, pharmacy) }), nil
}

func (m *memStore) SetAvailability(_ context.Context, id int64, pharmacy string, available bool) error {
	defer m.enter()()
	m.setOrder = append(m.setOrder, id)
	if err := m.failSet[id]; err != nil {
		return err
	}
	med, ok := m.medicines[id]
	if !ok || !contains(med.PharmacyName, pharmacy) {
		return fmt.Errorf("store: set availability: medicine %d: %w", id, store.ErrNotFound)
	}
	med.Availability = available
	return nil
}

func (m *memStore) PharmacyName(_ context.Context, pharmacistID int64) (string, error) {
	defer m.enter()()
	p, ok := m.pharmacists[pharmacistID]
	if !ok {
		return "", store.ErrNotFound
	}
	return p.PharmacyName, nil
}

func (m *memStore) ListDoctors(context.Context) ([]model.Doctor, error) {
	defer m.enter()()
	out := []model.Doctor{}
	for _, d := range m.doctors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Doctor(_ context.Context, id int64) (*model.Doctor, error) {
	defer m.enter()()
	d, ok := m.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	defer m.enter()()
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = m.id()
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *memStore) appointmentsWhere(keep func(*model.Appointment) bool) []model.Appointment {
	out := []model.Appointment{}
	for _, a := range m.appointments {
		if keep(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) AppointmentsByDoctor(_ context.Context, doctorID int64) ([]model.Appointment, error) {
	defer m.enter()()
	return m.appointmentsWhere(func(a *model.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (m *memStore) AppointmentsByPatient(_ context.Context, patientID int64) ([]model.Appointment, error) {
	defer m.enter()()
	return m.appointmentsWhere(func(a *model.Appointment) bool { return a.PatientID == patientID }), nil
}

func (m *memStore) CommitConfirmations(_ context.Context, doctorID int64, cs []store.Confirmation) ([]model.Appointment, error) {
	defer m.enter()()
	out := []model.Appointment{}
	for _, c := range cs {
		a, ok := m.appointments[c.ID]
		if !ok || a.DoctorID != doctorID {
			continue
		}
		a.Confirm = c.Confirm
		out = append(out, *a)
	}
	return out, nil
}

type memSessions struct {
	mu sync.Mutex
	m  map[string]*session.Session
	n  int
}

func newMemSessions() *memSessions {
	return &memSessions{m: map[string]*session.Session{}}
}

func (s *memSessions) Create(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	sess.ID = fmt.Sprintf("sess-%d", s.n)
	sess.CreatedAt = time.Now()
	cp := *sess
	s.m[sess.ID] = &cp
	return nil
}

func (s *memSessions) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *memSessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

func (s *memSessions) TTL() time.Duration { return time.Hour }

type recPublisher struct {
	mu     sync.Mutex
	events []notify.AppointmentEvent
	err    error
}

func (p *recPublisher) Publish(_ context.Context, evs ...notify.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evs...)
	return nil
}

func (p *recPublisher) Close() error { return nil }
