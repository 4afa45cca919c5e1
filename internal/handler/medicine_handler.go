package handler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/form"
	"medisync-api/internal/model"
	"medisync-api/internal/store"
)

func (h *Handler) SearchMedicines(ctx context.Context, req *pb.SearchMedicinesRequest) (*pb.SearchMedicinesResponse, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return nil, status.Error(codes.InvalidArgument, "search query required")
	}

	meds, err := h.store.SearchMedicines(ctx, q)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("search medicines")
		return nil, status.Error(codes.Internal, "error searching medicines: "+err.Error())
	}
	return &pb.SearchMedicinesResponse{Medicines: toPBMedicines(meds)}, nil
}

func (h *Handler) ListMedicines(ctx context.Context, _ *pb.ListMedicinesRequest) (*pb.ListMedicinesResponse, error) {
	meds, err := h.store.ListMedicines(ctx)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("list medicines")
		return nil, status.Error(codes.Internal, "error loading medicines: "+err.Error())
	}
	return &pb.ListMedicinesResponse{Medicines: toPBMedicines(meds)}, nil
}

func (h *Handler) GetMedicine(ctx context.Context, req *pb.GetMedicineRequest) (*pb.GetMedicineResponse, error) {
	if req.Id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	m, err := h.store.Medicine(ctx, req.Id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "medicine not found")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Int64("id", req.Id).Msg("get medicine")
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.GetMedicineResponse{Medicine: toPBMedicine(m)}, nil
}

// AddMedicine files a record under the caller's pharmacy unless another
// pharmacy name and address are given.
func (h *Handler) AddMedicine(ctx context.Context, req *pb.AddMedicineRequest) (*pb.AddMedicineResponse, error) {
	sess, err := callerAs(ctx, model.RolePharmacist)
	if err != nil {
		return nil, err
	}

	var c form.Checker
	c.Required(form.F("medicine_name", req.MedicineName), form.F("ingredients", req.Ingredients))
	if err := c.Err(); err != nil {
		return nil, err
	}

	m := &model.Medicine{
		MedicineName: strings.TrimSpace(req.MedicineName),
		Ingredients:  strings.TrimSpace(req.Ingredients),
		PharmacyName: strings.TrimSpace(req.PharmacyName),
		Address:      strings.TrimSpace(req.Address),
		Availability: req.Availability,
	}
	if m.PharmacyName == "" || m.Address == "" {
		p, err := h.store.Profile(ctx, model.RolePharmacist, sess.RoleID)
		if err != nil {
			h.logger(ctx).Error().Err(err).Msg("add medicine: pharmacist lookup")
			return nil, status.Error(codes.FailedPrecondition, "pharmacist profile not found")
		}
		ph, ok := p.(*model.Pharmacist)
		if !ok {
			return nil, status.Error(codes.FailedPrecondition, "invalid user type")
		}
		if m.PharmacyName == "" {
			m.PharmacyName = ph.PharmacyName
		}
		if m.Address == "" {
			m.Address = ph.Address
		}
	}

	if err := h.store.AddMedicine(ctx, m); err != nil {
		h.logger(ctx).Error().Err(err).Msg("add medicine")
		return nil, status.Error(codes.Internal, "error adding medicine: "+err.Error())
	}
	return &pb.AddMedicineResponse{Medicine: toPBMedicine(m)}, nil
}

func (h *Handler) pharmacy(ctx context.Context, pharmacistID int64) (string, error) {
	name, err := h.store.PharmacyName(ctx, pharmacistID)
	if errors.Is(err, store.ErrNotFound) {
		return "", status.Error(codes.FailedPrecondition, "pharmacist profile not found")
	}
	if err != nil {
		h.logger(ctx).Error().Err(err).Int64("pharmacist_id", pharmacistID).Msg("pharmacy name")
		return "", status.Error(codes.Internal, "internal error")
	}
	return name, nil
}

func (h *Handler) ListPharmacyMedicines(ctx context.Context, _ *pb.ListPharmacyMedicinesRequest) (*pb.ListPharmacyMedicinesResponse, error) {
	sess, err := callerAs(ctx, model.RolePharmacist)
	if err != nil {
		return nil, err
	}
	name, err := h.pharmacy(ctx, sess.RoleID)
	if err != nil {
		return nil, err
	}

	meds, err := h.store.MedicinesByPharmacy(ctx, name)
	if err != nil {
		h.logger(ctx).Error().Err(err).Msg("list pharmacy medicines")
		return nil, status.Error(codes.Internal, "error loading medicines: "+err.Error())
	}
	return &pb.ListPharmacyMedicinesResponse{PharmacyName: name, Medicines: toPBMedicines(meds)}, nil
}

// UpdateAvailability applies edits one id at a time in ascending id order.
// The first failure stops the run; updates already applied stay applied.
func (h *Handler) UpdateAvailability(ctx context.Context, req *pb.UpdateAvailabilityRequest) (*pb.UpdateAvailabilityResponse, error) {
	sess, err := callerAs(ctx, model.RolePharmacist)
	if err != nil {
		return nil, err
	}

	// last edit per id wins
	want := make(map[int64]bool, len(req.Edits))
	for _, e := range req.Edits {
		if e == nil || e.Id <= 0 {
			return nil, status.Error(codes.InvalidArgument, "every edit needs a medicine id")
		}
		want[e.Id] = e.Availability
	}
	ids := make([]int64, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if len(ids) == 0 {
		return &pb.UpdateAvailabilityResponse{UpdatedIds: []int64{}}, nil
	}

	name, err := h.pharmacy(ctx, sess.RoleID)
	if err != nil {
		return nil, err
	}

	done := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := h.store.SetAvailability(ctx, id, name, want[id]); err != nil {
			h.logger(ctx).Error().Err(err).
				Int64("id", id).
				Ints64("applied", done).
				Msg("update availability")
			code := codes.Internal
			if errors.Is(err, store.ErrNotFound) {
				code = codes.NotFound
			}
			return nil, status.Error(code, fmt.Sprintf("failed to update availability for ID %d", id))
		}
		done = append(done, id)
	}
	return &pb.UpdateAvailabilityResponse{UpdatedIds: done}, nil
}
