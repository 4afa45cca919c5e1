package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/auth"
	"medisync-api/internal/form"
	"medisync-api/internal/model"
	"medisync-api/internal/session"
	"medisync-api/internal/store"
)

func (h *Handler) RegisterPatient(ctx context.Context, req *pb.RegisterPatientRequest) (*pb.RegisterResponse, error) {
	var c form.Checker
	c.Required(
		form.F("first_name", req.FirstName),
		form.F("last_name", req.LastName),
		form.F("contact", req.Contact),
		form.F("address", req.Address),
		form.F("email", req.Email),
		form.F("password", req.Password),
	).
		Email("email", req.Email).
		Phone("contact", req.Contact).
		Password("password", req.Password, auth.MinPasswordLen)
	if err := c.Err(); err != nil {
		return nil, err
	}

	return h.register(ctx, &model.Patient{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Contact:   strings.TrimSpace(req.Contact),
		Address:   strings.TrimSpace(req.Address),
		Email:     strings.TrimSpace(req.Email),
	}, req.Password)
}

func (h *Handler) RegisterDoctor(ctx context.Context, req *pb.RegisterDoctorRequest) (*pb.RegisterResponse, error) {
	var c form.Checker
	c.Required(
		form.F("name", req.Name),
		form.F("clinic_location", req.ClinicLocation),
		form.F("contact", req.Contact),
		form.F("specialization", req.Specialization),
		form.F("email", req.Email),
		form.F("password", req.Password),
	).
		Email("email", req.Email).
		Phone("contact", req.Contact).
		Password("password", req.Password, auth.MinPasswordLen)
	if err := c.Err(); err != nil {
		return nil, err
	}

	return h.register(ctx, &model.Doctor{
		Name:           strings.TrimSpace(req.Name),
		ClinicLocation: strings.TrimSpace(req.ClinicLocation),
		Contact:        strings.TrimSpace(req.Contact),
		Specialization: strings.TrimSpace(req.Specialization),
		Email:          strings.TrimSpace(req.Email),
	}, req.Password)
}

func (h *Handler) RegisterPharmacist(ctx context.Context, req *pb.RegisterPharmacistRequest) (*pb.RegisterResponse, error) {
	var c form.Checker
	c.Required(
		form.F("name", req.Name),
		form.F("pharmacy_name", req.PharmacyName),
		form.F("address", req.Address),
		form.F("phone", req.Phone),
		form.F("email", req.Email),
		form.F("password", req.Password),
	).
		Email("email", req.Email).
		Phone("phone", req.Phone).
		Password("password", req.Password, auth.MinPasswordLen)
	if err := c.Err(); err != nil {
		return nil, err
	}

	return h.register(ctx, &model.Pharmacist{
		Name:         strings.TrimSpace(req.Name),
		PharmacyName: strings.TrimSpace(req.PharmacyName),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
	}, req.Password)
}

func (h *Handler) register(ctx context.Context, p model.Profile, password string) (*pb.RegisterResponse, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	u, err := h.store.Register(ctx, store.Registration{Profile: p, PasswordHash: hash})
	if err != nil {
		// dup email, but don't reveal that
		if errors.Is(err, store.ErrDuplicate) {
			return nil, status.Error(codes.AlreadyExists, "registration failed")
		}
		h.logger(ctx).Error().Err(err).Str("role", string(p.Role())).Msg("register")
		return nil, status.Error(codes.Internal, "registration failed")
	}

	tok, _, err := h.startSession(ctx, u)
	if err != nil {
		return nil, err
	}
	return &pb.RegisterResponse{UserId: u.UserID, Role: string(u.Type), RoleId: u.ID, Token: tok}, nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	var c form.Checker
	c.Required(form.F("email", req.Email), form.F("password", req.Password)).
		Email("email", req.Email).
		Password("password", req.Password, auth.MinPasswordLen)
	if err := c.Err(); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)

	acct, err := h.store.AccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("login: account lookup")
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !auth.CheckPassword(acct.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	u, err := h.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found in the database")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("login: user lookup")
		return nil, status.Error(codes.Internal, "internal error")
	}
	if _, err := model.ParseRole(string(u.Type)); err != nil {
		return nil, status.Error(codes.FailedPrecondition, "invalid user type")
	}

	tok, sess, err := h.startSession(ctx, u)
	if err != nil {
		return nil, err
	}
	return &pb.LoginResponse{Token: tok, UserId: sess.UserID, Role: string(sess.Role), RoleId: sess.RoleID}, nil
}

func (h *Handler) startSession(ctx context.Context, u *model.User) (string, *session.Session, error) {
	sess := &session.Session{UserID: u.UserID, RoleID: u.ID, Role: u.Type, Email: u.Email}
	if err := h.sessions.Create(ctx, sess); err != nil {
		h.logger(ctx).Error().Err(err).Int64("user_id", u.UserID).Msg("create session")
		return "", nil, status.Error(codes.Unavailable, "could not start session")
	}
	tok, err := auth.MakeToken(sess.ID, u.UserID, h.secret, h.sessions.TTL())
	if err != nil {
		return "", nil, status.Error(codes.Internal, "internal error")
	}
	return tok, sess, nil
}

func (h *Handler) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	sess, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Delete(ctx, sess.ID); err != nil {
		h.logger(ctx).Error().Err(err).Str("session_id", sess.ID).Msg("logout")
		return nil, status.Error(codes.Unavailable, "could not end session")
	}
	return &pb.LogoutResponse{}, nil
}

// ResolveSession re-reads the user row behind the session so a deleted or
// retyped user is noticed on the next page load.
func (h *Handler) ResolveSession(ctx context.Context, _ *pb.ResolveSessionRequest) (*pb.ResolveSessionResponse, error) {
	sess, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.store.UserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found in the database")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("resolve session: user lookup")
		return nil, status.Error(codes.Internal, "internal error")
	}
	role, err := model.ParseRole(string(u.Type))
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, "invalid user type")
	}

	p, err := h.profile(ctx, role, u.ID)
	if err != nil {
		return nil, err
	}
	return &pb.ResolveSessionResponse{User: toPBUser(u), Profile: p}, nil
}
