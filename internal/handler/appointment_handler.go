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
	"medisync-api/internal/notify"
	"medisync-api/internal/store"
)

func (h *Handler) ListDoctors(ctx context.Context, _ *pb.ListDoctorsRequest) (*pb.ListDoctorsResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	docs, err := h.store.ListDoctors(ctx)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("list doctors")
		return nil, status.Error(codes.Internal, "error loading doctors: "+err.Error())
	}
	out := make([]*pb.Doctor, len(docs))
	for i := range docs {
		out[i] = toPBDoctor(&docs[i])
	}
	return &pb.ListDoctorsResponse{Doctors: out}, nil
}

// CreateAppointment books the calling patient with a doctor. Every field is
// mandatory and nothing checks for overlaps. The stored doctor name wins over
// the submitted one.
func (h *Handler) CreateAppointment(ctx context.Context, req *pb.CreateAppointmentRequest) (*pb.CreateAppointmentResponse, error) {
	sess, err := callerAs(ctx, model.RolePatient)
	if err != nil {
		return nil, err
	}

	var c form.Checker
	c.Check(sess.RoleID > 0, "patient_id", "required").
		Check(req.DoctorId > 0, "doctor_id", "required").
		Required(form.F("doctor_name", req.DoctorName)).
		Check(req.StartTime != nil && !req.StartTime.IsZero(), "start_time", "required").
		Check(req.EndTime != nil && !req.EndTime.IsZero(), "end_time", "required")
	if err := c.Err(); err != nil {
		return nil, err
	}

	p, err := h.store.Profile(ctx, model.RolePatient, sess.RoleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.FailedPrecondition, "patient profile not found")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("create appointment: patient lookup")
		return nil, status.Error(codes.Internal, "error adding appointment: "+err.Error())
	}
	patient, ok := p.(*model.Patient)
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "invalid user type")
	}
	name := strings.TrimSpace(patient.FullName())
	if name == "" {
		return nil, form.Errors{{Field: "patient_name", Description: "required"}}
	}

	doc, err := h.store.Doctor(ctx, req.DoctorId)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "doctor not found")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Int64("doctor_id", req.DoctorId).Msg("create appointment: doctor lookup")
		return nil, status.Error(codes.Internal, "error adding appointment: "+err.Error())
	}

	a := &model.Appointment{
		PatientID:   sess.RoleID,
		PatientName: name,
		DoctorID:    req.DoctorId,
		DoctorName:  doc.Name,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
	}
	if err := h.store.CreateAppointment(ctx, a); err != nil {
		h.logger(ctx).Error().Err(err).Int64("doctor_id", a.DoctorID).Msg("create appointment")
		return nil, status.Error(codes.Internal, "error adding appointment: "+err.Error())
	}
	return &pb.CreateAppointmentResponse{Appointment: toPBAppointment(a)}, nil
}

func (h *Handler) ListDoctorAppointments(ctx context.Context, _ *pb.ListDoctorAppointmentsRequest) (*pb.ListDoctorAppointmentsResponse, error) {
	sess, err := callerAs(ctx, model.RoleDoctor)
	if err != nil {
		return nil, err
	}
	apts, err := h.store.AppointmentsByDoctor(ctx, sess.RoleID)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("list doctor appointments")
		return nil, status.Error(codes.Internal, "error loading appointments: "+err.Error())
	}
	return &pb.ListDoctorAppointmentsResponse{Appointments: toPBAppointments(apts)}, nil
}

// CommitConfirmations writes the doctor's staged confirm toggles in one
// statement and announces every row that changed.
func (h *Handler) CommitConfirmations(ctx context.Context, req *pb.CommitConfirmationsRequest) (*pb.CommitConfirmationsResponse, error) {
	sess, err := callerAs(ctx, model.RoleDoctor)
	if err != nil {
		return nil, err
	}

	// last toggle per id wins
	idx := make(map[int64]int, len(req.Confirmations))
	var cs []store.Confirmation
	for _, e := range req.Confirmations {
		if e == nil || e.Id <= 0 {
			return nil, status.Error(codes.InvalidArgument, "every confirmation needs an appointment id")
		}
		if i, ok := idx[e.Id]; ok {
			cs[i].Confirm = e.Confirm
			continue
		}
		idx[e.Id] = len(cs)
		cs = append(cs, store.Confirmation{ID: e.Id, Confirm: e.Confirm})
	}
	if len(cs) == 0 {
		return &pb.CommitConfirmationsResponse{Appointments: []*pb.Appointment{}}, nil
	}

	updated, err := h.store.CommitConfirmations(ctx, sess.RoleID, cs)
	if err != nil {
		h.logger(ctx).Error().Err(err).Int("count", len(cs)).Msg("commit confirmations")
		return nil, status.Error(codes.Internal, "error updating appointments: "+err.Error())
	}

	at := h.now()
	events := make([]notify.AppointmentEvent, len(updated))
	for i := range updated {
		events[i] = notify.EventFor(&updated[i], at)
	}
	if err := h.events.Publish(ctx, events...); err != nil {
		h.logger(ctx).Warn().Err(err).Int("count", len(events)).Msg("publish appointment events")
	}
	return &pb.CommitConfirmationsResponse{Appointments: toPBAppointments(updated)}, nil
}

func (h *Handler) AppointmentStatus(ctx context.Context, _ *pb.AppointmentStatusRequest) (*pb.AppointmentStatusResponse, error) {
	sess, err := callerAs(ctx, model.RolePatient)
	if err != nil {
		return nil, err
	}
	apts, err := h.store.AppointmentsByPatient(ctx, sess.RoleID)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("appointment status")
		return nil, status.Error(codes.Internal, "error loading appointments: "+err.Error())
	}
	out := make([]*pb.AppointmentStatus, len(apts))
	for i := range apts {
		a := &apts[i]
		out[i] = &pb.AppointmentStatus{
			AppointmentId: a.ID,
			DoctorName:    a.DoctorName,
			Accepted:      a.Confirm,
			Message:       a.StatusLine(),
		}
	}
	return &pb.AppointmentStatusResponse{Statuses: out}, nil
}
