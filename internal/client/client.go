// Package client talks to the MediSync gRPC service on behalf of the CLI and
// keeps the signed-in session in a file.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/inventory"
	"medisync-api/internal/model"
)

type Client struct {
	api         pb.MediSyncClient
	conn        *grpc.ClientConn
	sessionFile string
	now         func() time.Time
}

// Dial connects to addr without transport security.
func Dial(addr, sessionFile string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.CodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	c := New(conn, sessionFile)
	c.conn = conn
	return c, nil
}

func New(cc grpc.ClientConnInterface, sessionFile string) *Client {
	return &Client{api: pb.NewMediSyncClient(cc), sessionFile: sessionFile, now: time.Now}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Session returns the persisted session, or ErrNoSession.
func (c *Client) Session() (*SavedSession, error) {
	return loadSession(c.sessionFile)
}

func (c *Client) authed(ctx context.Context) (context.Context, error) {
	s, err := c.Session()
	if err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.Token), nil
}

// signedOut drops the local session when the server no longer knows it.
func (c *Client) signedOut(err error) error {
	if status.Code(err) != codes.Unauthenticated {
		return err
	}
	if rmErr := removeSession(c.sessionFile); rmErr != nil {
		return errors.Join(err, rmErr)
	}
	return fmt.Errorf("%w: %s", ErrNoSession, status.Convert(err).Message())
}

func (c *Client) Login(ctx context.Context, email, password string) (*SavedSession, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	s := &SavedSession{
		Token:   resp.Token,
		UserID:  resp.UserId,
		Role:    resp.Role,
		RoleID:  resp.RoleId,
		Email:   strings.TrimSpace(email),
		SavedAt: c.now().UTC(),
	}
	if err := saveSession(c.sessionFile, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout ends the server session if one is known and always removes the
// session file.
func (c *Client) Logout(ctx context.Context) error {
	actx, err := c.authed(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	_, rpcErr := c.api.Logout(actx, &pb.LogoutRequest{})
	if status.Code(rpcErr) == codes.Unauthenticated {
		rpcErr = nil
	}
	return errors.Join(rpcErr, removeSession(c.sessionFile))
}

func (c *Client) WhoAmI(ctx context.Context) (*pb.ResolveSessionResponse, error) {
	actx, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ResolveSession(actx, &pb.ResolveSessionRequest{})
	if err != nil {
		return nil, c.signedOut(err)
	}
	return resp, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]model.Medicine, error) {
	actx, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.SearchMedicines(actx, &pb.SearchMedicinesRequest{Query: query})
	if err != nil {
		return nil, c.signedOut(err)
	}
	return fromPBMedicines(resp.Medicines), nil
}

func (c *Client) Medicines(ctx context.Context) ([]model.Medicine, error) {
	actx, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListMedicines(actx, &pb.ListMedicinesRequest{})
	if err != nil {
		return nil, c.signedOut(err)
	}
	return fromPBMedicines(resp.Medicines), nil
}

func (c *Client) PharmacyMedicines(ctx context.Context) ([]model.Medicine, error) {
	actx, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListPharmacyMedicines(actx, &pb.ListPharmacyMedicinesRequest{})
	if err != nil {
		return nil, c.signedOut(err)
	}
	return fromPBMedicines(resp.Medicines), nil
}

func (c *Client) UpdateAvailability(ctx context.Context, edits []inventory.Edit) ([]int64, error) {
	actx, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}
	req := &pb.UpdateAvailabilityRequest{Edits: make([]*pb.AvailabilityEdit, 0, len(edits))}
	for _, e := range edits {
		req.Edits = append(req.Edits, &pb.AvailabilityEdit{Id: e.ID, Availability: e.Availability})
	}
	resp, err := c.api.UpdateAvailability(actx, req)
	if err != nil {
		return nil, c.signedOut(err)
	}
	return resp.UpdatedIds, nil
}

func fromPBMedicines(in []*pb.Medicine) []model.Medicine {
	out := make([]model.Medicine, 0, len(in))
	for _, m := range in {
		if m == nil {
			continue
		}
		out = append(out, model.Medicine{
			ID:           m.Id,
			MedicineName: m.MedicineName,
			Ingredients:  m.Ingredients,
			PharmacyName: m.PharmacyName,
			Address:      m.Address,
			Availability: m.Availability,
		})
	}
	return out
}
