package client

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/inventory"
)

// fakeServer accepts exactly one token, "tok", until Logout revokes it.
type fakeServer struct {
	pb.UnimplementedMediSyncServer

	mu      sync.Mutex
	revoked bool
	stock   map[int64]bool
	edits   []*pb.AvailabilityEdit
}

func (s *fakeServer) authorized(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get("authorization"); len(v) == 0 || v[0] != "Bearer tok" || s.revoked {
		return status.Error(codes.Unauthenticated, "session expired")
	}
	return nil
}

func (s *fakeServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.Password != "testpass123" {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	s.mu.Lock()
	s.revoked = false
	s.mu.Unlock()
	return &pb.LoginResponse{Token: "tok", UserId: 7, Role: "pharmacist", RoleId: 2}, nil
}

func (s *fakeServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.revoked = true
	s.mu.Unlock()
	return &pb.LogoutResponse{}, nil
}

func (s *fakeServer) ResolveSession(ctx context.Context, _ *pb.ResolveSessionRequest) (*pb.ResolveSessionResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	return &pb.ResolveSessionResponse{
		User:    &pb.User{UserId: 7, Id: 2, Email: "pharm@example.com", Type: "pharmacist"},
		Profile: &pb.Profile{Role: "pharmacist", Pharmacist: &pb.Pharmacist{Id: 2, PharmacyName: "Good Health"}},
	}, nil
}

func (s *fakeServer) SearchMedicines(ctx context.Context, req *pb.SearchMedicinesRequest) (*pb.SearchMedicinesResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	return &pb.SearchMedicinesResponse{Medicines: []*pb.Medicine{{Id: 1, MedicineName: req.Query + " 500mg", Availability: true}}}, nil
}

func (s *fakeServer) ListMedicines(ctx context.Context, _ *pb.ListMedicinesRequest) (*pb.ListMedicinesResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	return &pb.ListMedicinesResponse{Medicines: []*pb.Medicine{{Id: 1}, {Id: 2}, {Id: 3}}}, nil
}

func (s *fakeServer) ListPharmacyMedicines(ctx context.Context, _ *pb.ListPharmacyMedicinesRequest) (*pb.ListPharmacyMedicinesResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := &pb.ListPharmacyMedicinesResponse{PharmacyName: "Good Health"}
	for _, id := range []int64{1, 2} {
		resp.Medicines = append(resp.Medicines, &pb.Medicine{Id: id, Availability: s.stock[id]})
	}
	return resp, nil
}

func (s *fakeServer) UpdateAvailability(ctx context.Context, req *pb.UpdateAvailabilityRequest) (*pb.UpdateAvailabilityResponse, error) {
	if err := s.authorized(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, req.Edits...)
	resp := &pb.UpdateAvailabilityResponse{}
	for _, e := range req.Edits {
		s.stock[e.Id] = e.Availability
		resp.UpdatedIds = append(resp.UpdatedIds, e.Id)
	}
	return resp, nil
}

func setup(t *testing.T) (*Client, *fakeServer, string) {
	t.Helper()
	srv := &fakeServer{stock: map[int64]bool{1: true, 2: false}}
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterMediSyncServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		gs.Stop()
	})

	path := filepath.Join(t.TempDir(), "medisync", "session.json")
	return New(conn, path), srv, path
}

func TestLoginPersistsSession(t *testing.T) {
	c, _, path := setup(t)
	ctx := context.Background()

	s, err := c.Login(ctx, " pharm@example.com ", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, "pharm@example.com", s.Email)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// a fresh client on the same file is still signed in
	again := New(nil, path)
	saved, err := again.Session()
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.UserID)
	assert.Equal(t, "pharmacist", saved.Role)
}

func TestLoginBadPasswordWritesNothing(t *testing.T) {
	c, _, path := setup(t)
	_, err := c.Login(context.Background(), "pharm@example.com", "nope")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWhoAmI(t *testing.T) {
	c, _, _ := setup(t)
	ctx := context.Background()

	_, err := c.WhoAmI(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)
	resp, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pharmacist", resp.Profile.Role)
	assert.Equal(t, "Good Health", resp.Profile.Pharmacist.PharmacyName)
}

func TestExpiredSessionRemovesFile(t *testing.T) {
	c, srv, path := setup(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)

	srv.mu.Lock()
	srv.revoked = true
	srv.mu.Unlock()

	_, err = c.WhoAmI(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogout(t *testing.T) {
	c, srv, path := setup(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	assert.True(t, srv.revoked)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// already signed out
	require.NoError(t, c.Logout(ctx))
}

func TestSearch(t *testing.T) {
	c, _, _ := setup(t)
	ctx := context.Background()

	_, err := c.Search(ctx, "Paracetamol")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)
	meds, err := c.Search(ctx, "Paracetamol")
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Paracetamol 500mg", meds[0].MedicineName)
	assert.True(t, meds[0].Availability)
}

func TestMedicines(t *testing.T) {
	c, _, _ := setup(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)

	meds, err := c.Medicines(ctx)
	require.NoError(t, err)
	assert.Len(t, meds, 3)
}

func TestInventoryCommitThroughClient(t *testing.T) {
	c, srv, _ := setup(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "pharm@example.com", "testpass123")
	require.NoError(t, err)

	list, err := c.PharmacyMedicines(ctx)
	require.NoError(t, err)
	d := inventory.NewDraft(list)
	require.NoError(t, d.Stage(2, true))

	updated, err := d.Commit(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, updated)
	assert.Equal(t, []*pb.AvailabilityEdit{{Id: 2, Availability: true}}, srv.edits)
	assert.True(t, d.View()[1].Availability)
	assert.False(t, d.Dirty())
}
