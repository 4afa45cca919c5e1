package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/form"
	"medisync-api/internal/model"
	"medisync-api/internal/store"
)

func (h *Handler) profile(ctx context.Context, role model.Role, id int64) (*pb.Profile, error) {
	p, err := h.store.Profile(ctx, role, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "profile not found")
	}
	if errors.Is(err, model.ErrInvalidRole) {
		return nil, status.Error(codes.FailedPrecondition, "invalid user type")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Str("role", string(role)).Msg("load profile")
		return nil, status.Error(codes.Internal, "internal error")
	}
	return toPBProfile(p), nil
}

func (h *Handler) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	sess, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	p, err := h.profile(ctx, sess.Role, sess.RoleID)
	if err != nil {
		return nil, err
	}
	return &pb.GetProfileResponse{Profile: p}, nil
}

// UpdateProfile edits the caller's own role row. Ids and email in the
// request are ignored.
func (h *Handler) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	sess, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var (
		c form.Checker
		p model.Profile
	)
	switch in := req.Profile; {
	case in == nil:
		return nil, status.Error(codes.InvalidArgument, "profile required")
	case sess.Role == model.RolePatient && in.Patient != nil:
		c.Required(
			form.F("first_name", in.Patient.FirstName),
			form.F("last_name", in.Patient.LastName),
			form.F("contact", in.Patient.Contact),
			form.F("address", in.Patient.Address),
		).Phone("contact", in.Patient.Contact)
		p = &model.Patient{
			ID:        sess.RoleID,
			FirstName: strings.TrimSpace(in.Patient.FirstName),
			LastName:  strings.TrimSpace(in.Patient.LastName),
			Contact:   strings.TrimSpace(in.Patient.Contact),
			Address:   strings.TrimSpace(in.Patient.Address),
		}
	case sess.Role == model.RoleDoctor && in.Doctor != nil:
		c.Required(
			form.F("name", in.Doctor.Name),
			form.F("clinic_location", in.Doctor.ClinicLocation),
			form.F("contact", in.Doctor.Contact),
			form.F("specialization", in.Doctor.Specialization),
		).Phone("contact", in.Doctor.Contact)
		p = &model.Doctor{
			ID:             sess.RoleID,
			Name:           strings.TrimSpace(in.Doctor.Name),
			ClinicLocation: strings.TrimSpace(in.Doctor.ClinicLocation),
			Contact:        strings.TrimSpace(in.Doctor.Contact),
			Specialization: strings.TrimSpace(in.Doctor.Specialization),
		}
	case sess.Role == model.RolePharmacist && in.Pharmacist != nil:
		c.Required(
			form.F("name", in.Pharmacist.Name),
			form.F("pharmacy_name", in.Pharmacist.PharmacyName),
			form.F("address", in.Pharmacist.Address),
			form.F("phone", in.Pharmacist.Phone),
		).Phone("phone", in.Pharmacist.Phone)
		p = &model.Pharmacist{
			ID:           sess.RoleID,
			Name:         strings.TrimSpace(in.Pharmacist.Name),
			PharmacyName: strings.TrimSpace(in.Pharmacist.PharmacyName),
			Address:      strings.TrimSpace(in.Pharmacist.Address),
			Phone:        strings.TrimSpace(in.Pharmacist.Phone),
		}
	default:
		return nil, status.Errorf(codes.InvalidArgument, "profile must carry a %s record", sess.Role)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := h.store.UpdateProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "profile not found")
		}
		h.logger(ctx).Error().Err(err).Msg("update profile")
		return nil, status.Error(codes.Internal, "error updating profile: "+err.Error())
	}

	out, err := h.profile(ctx, sess.Role, sess.RoleID)
	if err != nil {
		return nil, err
	}
	return &pb.UpdateProfileResponse{Profile: out}, nil
}
