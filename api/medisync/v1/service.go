package medisyncv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "medisync.v1.MediSync"

const (
	MediSync_RegisterPatient_FullMethodName        = "/medisync.v1.MediSync/RegisterPatient"
	MediSync_RegisterDoctor_FullMethodName         = "/medisync.v1.MediSync/RegisterDoctor"
	MediSync_RegisterPharmacist_FullMethodName     = "/medisync.v1.MediSync/RegisterPharmacist"
	MediSync_Login_FullMethodName                  = "/medisync.v1.MediSync/Login"
	MediSync_Logout_FullMethodName                 = "/medisync.v1.MediSync/Logout"
	MediSync_ResolveSession_FullMethodName         = "/medisync.v1.MediSync/ResolveSession"
	MediSync_GetProfile_FullMethodName             = "/medisync.v1.MediSync/GetProfile"
	MediSync_UpdateProfile_FullMethodName          = "/medisync.v1.MediSync/UpdateProfile"
	MediSync_SearchMedicines_FullMethodName        = "/medisync.v1.MediSync/SearchMedicines"
	MediSync_ListMedicines_FullMethodName          = "/medisync.v1.MediSync/ListMedicines"
	MediSync_GetMedicine_FullMethodName            = "/medisync.v1.MediSync/GetMedicine"
	MediSync_AddMedicine_FullMethodName            = "/medisync.v1.MediSync/AddMedicine"
	MediSync_ListPharmacyMedicines_FullMethodName  = "/medisync.v1.MediSync/ListPharmacyMedicines"
	MediSync_UpdateAvailability_FullMethodName     = "/medisync.v1.MediSync/UpdateAvailability"
	MediSync_ListDoctors_FullMethodName            = "/medisync.v1.MediSync/ListDoctors"
	MediSync_CreateAppointment_FullMethodName      = "/medisync.v1.MediSync/CreateAppointment"
	MediSync_ListDoctorAppointments_FullMethodName = "/medisync.v1.MediSync/ListDoctorAppointments"
	MediSync_CommitConfirmations_FullMethodName    = "/medisync.v1.MediSync/CommitConfirmations"
	MediSync_AppointmentStatus_FullMethodName      = "/medisync.v1.MediSync/AppointmentStatus"
)

// MediSyncServer is the server API for the MediSync service.
// Implementations must embed UnimplementedMediSyncServer.
type MediSyncServer interface {
	RegisterPatient(context.Context, *RegisterPatientRequest) (*RegisterResponse, error)
	RegisterDoctor(context.Context, *RegisterDoctorRequest) (*RegisterResponse, error)
	RegisterPharmacist(context.Context, *RegisterPharmacistRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	ResolveSession(context.Context, *ResolveSessionRequest) (*ResolveSessionResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	SearchMedicines(context.Context, *SearchMedicinesRequest) (*SearchMedicinesResponse, error)
	ListMedicines(context.Context, *ListMedicinesRequest) (*ListMedicinesResponse, error)
	GetMedicine(context.Context, *GetMedicineRequest) (*GetMedicineResponse, error)
	AddMedicine(context.Context, *AddMedicineRequest) (*AddMedicineResponse, error)
	ListPharmacyMedicines(context.Context, *ListPharmacyMedicinesRequest) (*ListPharmacyMedicinesResponse, error)
	UpdateAvailability(context.Context, *UpdateAvailabilityRequest) (*UpdateAvailabilityResponse, error)
	ListDoctors(context.Context, *ListDoctorsRequest) (*ListDoctorsResponse, error)
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error)
	ListDoctorAppointments(context.Context, *ListDoctorAppointmentsRequest) (*ListDoctorAppointmentsResponse, error)
	CommitConfirmations(context.Context, *CommitConfirmationsRequest) (*CommitConfirmationsResponse, error)
	AppointmentStatus(context.Context, *AppointmentStatusRequest) (*AppointmentStatusResponse, error)
	mustEmbedUnimplementedMediSyncServer()
}

type UnimplementedMediSyncServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedMediSyncServer) RegisterPatient(context.Context, *RegisterPatientRequest) (*RegisterResponse, error) {
	return nil, unimplemented("RegisterPatient")
}
func (UnimplementedMediSyncServer) RegisterDoctor(context.Context, *RegisterDoctorRequest) (*RegisterResponse, error) {
	return nil, unimplemented("RegisterDoctor")
}
func (UnimplementedMediSyncServer) RegisterPharmacist(context.Context, *RegisterPharmacistRequest) (*RegisterResponse, error) {
	return nil, unimplemented("RegisterPharmacist")
}
func (UnimplementedMediSyncServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedMediSyncServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedMediSyncServer) ResolveSession(context.Context, *ResolveSessionRequest) (*ResolveSessionResponse, error) {
	return nil, unimplemented("ResolveSession")
}
func (UnimplementedMediSyncServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedMediSyncServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedMediSyncServer) SearchMedicines(context.Context, *SearchMedicinesRequest) (*SearchMedicinesResponse, error) {
	return nil, unimplemented("SearchMedicines")
}
func (UnimplementedMediSyncServer) ListMedicines(context.Context, *ListMedicinesRequest) (*ListMedicinesResponse, error) {
	return nil, unimplemented("ListMedicines")
}
func (UnimplementedMediSyncServer) GetMedicine(context.Context, *GetMedicineRequest) (*GetMedicineResponse, error) {
	return nil, unimplemented("GetMedicine")
}
func (UnimplementedMediSyncServer) AddMedicine(context.Context, *AddMedicineRequest) (*AddMedicineResponse, error) {
	return nil, unimplemented("AddMedicine")
}
func (UnimplementedMediSyncServer) ListPharmacyMedicines(context.Context, *ListPharmacyMedicinesRequest) (*ListPharmacyMedicinesResponse, error) {
	return nil, unimplemented("ListPharmacyMedicines")
}
func (UnimplementedMediSyncServer) UpdateAvailability(context.Context, *UpdateAvailabilityRequest) (*UpdateAvailabilityResponse, error) {
	return nil, unimplemented("UpdateAvailability")
}
func (UnimplementedMediSyncServer) ListDoctors(context.Context, *ListDoctorsRequest) (*ListDoctorsResponse, error) {
	return nil, unimplemented("ListDoctors")
}
func (UnimplementedMediSyncServer) CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	return nil, unimplemented("CreateAppointment")
}
func (UnimplementedMediSyncServer) ListDoctorAppointments(context.Context, *ListDoctorAppointmentsRequest) (*ListDoctorAppointmentsResponse, error) {
	return nil, unimplemented("ListDoctorAppointments")
}
func (UnimplementedMediSyncServer) CommitConfirmations(context.Context, *CommitConfirmationsRequest) (*CommitConfirmationsResponse, error) {
	return nil, unimplemented("CommitConfirmations")
}
func (UnimplementedMediSyncServer) AppointmentStatus(context.Context, *AppointmentStatusRequest) (*AppointmentStatusResponse, error) {
	return nil, unimplemented("AppointmentStatus")
}
func (UnimplementedMediSyncServer) mustEmbedUnimplementedMediSyncServer() {}

func RegisterMediSyncServer(s grpc.ServiceRegistrar, srv MediSyncServer) {
	s.RegisterService(&MediSync_ServiceDesc, srv)
}

// unary adapts a typed server method into a grpc.MethodDesc, running it
// through the server's interceptor chain when one is installed.
func unary[Req, Resp any](name string, call func(MediSyncServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MediSyncServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MediSyncServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var MediSync_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MediSyncServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("RegisterPatient", MediSyncServer.RegisterPatient),
		unary("RegisterDoctor", MediSyncServer.RegisterDoctor),
		unary("RegisterPharmacist", MediSyncServer.RegisterPharmacist),
		unary("Login", MediSyncServer.Login),
		unary("Logout", MediSyncServer.Logout),
		unary("ResolveSession", MediSyncServer.ResolveSession),
		unary("GetProfile", MediSyncServer.GetProfile),
		unary("UpdateProfile", MediSyncServer.UpdateProfile),
		unary("SearchMedicines", MediSyncServer.SearchMedicines),
		unary("ListMedicines", MediSyncServer.ListMedicines),
		unary("GetMedicine", MediSyncServer.GetMedicine),
		unary("AddMedicine", MediSyncServer.AddMedicine),
		unary("ListPharmacyMedicines", MediSyncServer.ListPharmacyMedicines),
		unary("UpdateAvailability", MediSyncServer.UpdateAvailability),
		unary("ListDoctors", MediSyncServer.ListDoctors),
		unary("CreateAppointment", MediSyncServer.CreateAppointment),
		unary("ListDoctorAppointments", MediSyncServer.ListDoctorAppointments),
		unary("CommitConfirmations", MediSyncServer.CommitConfirmations),
		unary("AppointmentStatus", MediSyncServer.AppointmentStatus),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "medisync/v1/medisync.proto",
}

// MediSyncClient is the client API for the MediSync service.
type MediSyncClient interface {
	RegisterPatient(ctx context.Context, in *RegisterPatientRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	RegisterDoctor(ctx context.Context, in *RegisterDoctorRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	RegisterPharmacist(ctx context.Context, in *RegisterPharmacistRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	ResolveSession(ctx context.Context, in *ResolveSessionRequest, opts ...grpc.CallOption) (*ResolveSessionResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	SearchMedicines(ctx context.Context, in *SearchMedicinesRequest, opts ...grpc.CallOption) (*SearchMedicinesResponse, error)
	ListMedicines(ctx context.Context, in *ListMedicinesRequest, opts ...grpc.CallOption) (*ListMedicinesResponse, error)
	GetMedicine(ctx context.Context, in *GetMedicineRequest, opts ...grpc.CallOption) (*GetMedicineResponse, error)
	AddMedicine(ctx context.Context, in *AddMedicineRequest, opts ...grpc.CallOption) (*AddMedicineResponse, error)
	ListPharmacyMedicines(ctx context.Context, in *ListPharmacyMedicinesRequest, opts ...grpc.CallOption) (*ListPharmacyMedicinesResponse, error)
	UpdateAvailability(ctx context.Context, in *UpdateAvailabilityRequest, opts ...grpc.CallOption) (*UpdateAvailabilityResponse, error)
	ListDoctors(ctx context.Context, in *ListDoctorsRequest, opts ...grpc.CallOption) (*ListDoctorsResponse, error)
	CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error)
	ListDoctorAppointments(ctx context.Context, in *ListDoctorAppointmentsRequest, opts ...grpc.CallOption) (*ListDoctorAppointmentsResponse, error)
	CommitConfirmations(ctx context.Context, in *CommitConfirmationsRequest, opts ...grpc.CallOption) (*CommitConfirmationsResponse, error)
	AppointmentStatus(ctx context.Context, in *AppointmentStatusRequest, opts ...grpc.CallOption) (*AppointmentStatusResponse, error)
}

type mediSyncClient struct {
	cc grpc.ClientConnInterface
}

func NewMediSyncClient(cc grpc.ClientConnInterface) MediSyncClient {
	return &mediSyncClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediSyncClient) RegisterPatient(ctx context.Context, in *RegisterPatientRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MediSync_RegisterPatient_FullMethodName, in, opts)
}
func (c *mediSyncClient) RegisterDoctor(ctx context.Context, in *RegisterDoctorRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MediSync_RegisterDoctor_FullMethodName, in, opts)
}
func (c *mediSyncClient) RegisterPharmacist(ctx context.Context, in *RegisterPharmacistRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MediSync_RegisterPharmacist_FullMethodName, in, opts)
}
func (c *mediSyncClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MediSync_Login_FullMethodName, in, opts)
}
func (c *mediSyncClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, MediSync_Logout_FullMethodName, in, opts)
}
func (c *mediSyncClient) ResolveSession(ctx context.Context, in *ResolveSessionRequest, opts ...grpc.CallOption) (*ResolveSessionResponse, error) {
	return invoke[ResolveSessionResponse](ctx, c.cc, MediSync_ResolveSession_FullMethodName, in, opts)
}
func (c *mediSyncClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	return invoke[GetProfileResponse](ctx, c.cc, MediSync_GetProfile_FullMethodName, in, opts)
}
func (c *mediSyncClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, MediSync_UpdateProfile_FullMethodName, in, opts)
}
func (c *mediSyncClient) SearchMedicines(ctx context.Context, in *SearchMedicinesRequest, opts ...grpc.CallOption) (*SearchMedicinesResponse, error) {
	return invoke[SearchMedicinesResponse](ctx, c.cc, MediSync_SearchMedicines_FullMethodName, in, opts)
}
func (c *mediSyncClient) ListMedicines(ctx context.Context, in *ListMedicinesRequest, opts ...grpc.CallOption) (*ListMedicinesResponse, error) {
	return invoke[ListMedicinesResponse](ctx, c.cc, MediSync_ListMedicines_FullMethodName, in, opts)
}
func (c *mediSyncClient) GetMedicine(ctx context.Context, in *GetMedicineRequest, opts ...grpc.CallOption) (*GetMedicineResponse, error) {
	return invoke[GetMedicineResponse](ctx, c.cc, MediSync_GetMedicine_FullMethodName, in, opts)
}
func (c *mediSyncClient) AddMedicine(ctx context.Context, in *AddMedicineRequest, opts ...grpc.CallOption) (*AddMedicineResponse, error) {
	return invoke[AddMedicineResponse](ctx, c.cc, MediSync_AddMedicine_FullMethodName, in, opts)
}
func (c *mediSyncClient) ListPharmacyMedicines(ctx context.Context, in *ListPharmacyMedicinesRequest, opts ...grpc.CallOption) (*ListPharmacyMedicinesResponse, error) {
	return invoke[ListPharmacyMedicinesResponse](ctx, c.cc, MediSync_ListPharmacyMedicines_FullMethodName, in, opts)
}
func (c *mediSyncClient) UpdateAvailability(ctx context.Context, in *UpdateAvailabilityRequest, opts ...grpc.CallOption) (*UpdateAvailabilityResponse, error) {
	return invoke[UpdateAvailabilityResponse](ctx, c.cc, MediSync_UpdateAvailability_FullMethodName, in, opts)
}
func (c *mediSyncClient) ListDoctors(ctx context.Context, in *ListDoctorsRequest, opts ...grpc.CallOption) (*ListDoctorsResponse, error) {
	return invoke[ListDoctorsResponse](ctx, c.cc, MediSync_ListDoctors_FullMethodName, in, opts)
}
func (c *mediSyncClient) CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error) {
	return invoke[CreateAppointmentResponse](ctx, c.cc, MediSync_CreateAppointment_FullMethodName, in, opts)
}
func (c *mediSyncClient) ListDoctorAppointments(ctx context.Context, in *ListDoctorAppointmentsRequest, opts ...grpc.CallOption) (*ListDoctorAppointmentsResponse, error) {
	return invoke[ListDoctorAppointmentsResponse](ctx, c.cc, MediSync_ListDoctorAppointments_FullMethodName, in, opts)
}
func (c *mediSyncClient) CommitConfirmations(ctx context.Context, in *CommitConfirmationsRequest, opts ...grpc.CallOption) (*CommitConfirmationsResponse, error) {
	return invoke[CommitConfirmationsResponse](ctx, c.cc, MediSync_CommitConfirmations_FullMethodName, in, opts)
}
func (c *mediSyncClient) AppointmentStatus(ctx context.Context, in *AppointmentStatusRequest, opts ...grpc.CallOption) (*AppointmentStatusResponse, error) {
	return invoke[AppointmentStatusResponse](ctx, c.cc, MediSync_AppointmentStatus_FullMethodName, in, opts)
}
