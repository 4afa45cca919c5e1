package medisyncv1

import (
	"os"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rpcRe     = regexp.MustCompile(`(?m)^\s*rpc (\w+)\((\w+)\) returns \((\w+)\);`)
	messageRe = regexp.MustCompile(`(?ms)^message (\w+) \{(.*?)\}$`)
	fieldRe   = regexp.MustCompile(`(?m)^\s*(?:repeated )?[\w.]+ (\w+) = \d+;`)
)

var goMessages = map[string]any{
	"User": User{}, "Patient": Patient{}, "Doctor": Doctor{}, "Pharmacist": Pharmacist{},
	"Profile": Profile{}, "Medicine": Medicine{}, "Appointment": Appointment{},
	"RegisterPatientRequest": RegisterPatientRequest{}, "RegisterDoctorRequest": RegisterDoctorRequest{},
	"RegisterPharmacistRequest": RegisterPharmacistRequest{}, "RegisterResponse": RegisterResponse{},
	"LoginRequest": LoginRequest{}, "LoginResponse": LoginResponse{},
	"LogoutRequest": LogoutRequest{}, "LogoutResponse": LogoutResponse{},
	"ResolveSessionRequest": ResolveSessionRequest{}, "ResolveSessionResponse": ResolveSessionResponse{},
	"GetProfileRequest": GetProfileRequest{}, "GetProfileResponse": GetProfileResponse{},
	"UpdateProfileRequest": UpdateProfileRequest{}, "UpdateProfileResponse": UpdateProfileResponse{},
	"SearchMedicinesRequest": SearchMedicinesRequest{}, "SearchMedicinesResponse": SearchMedicinesResponse{},
	"ListMedicinesRequest": ListMedicinesRequest{}, "ListMedicinesResponse": ListMedicinesResponse{},
	"GetMedicineRequest": GetMedicineRequest{}, "GetMedicineResponse": GetMedicineResponse{},
	"AddMedicineRequest": AddMedicineRequest{}, "AddMedicineResponse": AddMedicineResponse{},
	"ListPharmacyMedicinesRequest": ListPharmacyMedicinesRequest{}, "ListPharmacyMedicinesResponse": ListPharmacyMedicinesResponse{},
	"AvailabilityEdit": AvailabilityEdit{}, "UpdateAvailabilityRequest": UpdateAvailabilityRequest{},
	"UpdateAvailabilityResponse": UpdateAvailabilityResponse{},
	"ListDoctorsRequest": ListDoctorsRequest{}, "ListDoctorsResponse": ListDoctorsResponse{},
	"CreateAppointmentRequest": CreateAppointmentRequest{}, "CreateAppointmentResponse": CreateAppointmentResponse{},
	"ListDoctorAppointmentsRequest": ListDoctorAppointmentsRequest{}, "ListDoctorAppointmentsResponse": ListDoctorAppointmentsResponse{},
	"ConfirmationEdit": ConfirmationEdit{}, "CommitConfirmationsRequest": CommitConfirmationsRequest{},
	"CommitConfirmationsResponse": CommitConfirmationsResponse{},
	"AppointmentStatusRequest": AppointmentStatusRequest{}, "AppointmentStatus": AppointmentStatus{},
	"AppointmentStatusResponse": AppointmentStatusResponse{},
}

func readProto(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("medisync.proto")
	require.NoError(t, err)
	return string(raw)
}

func jsonNames(v any) []string {
	var names []string
	rt := reflect.TypeOf(v)
	for i := 0; i < rt.NumField(); i++ {
		tag, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		names = append(names, tag)
	}
	return names
}

func TestProtoMatchesServiceDesc(t *testing.T) {
	var rpcs []string
	for _, m := range rpcRe.FindAllStringSubmatch(readProto(t), -1) {
		rpcs = append(rpcs, m[1])
	}
	var methods []string
	for _, m := range MediSync_ServiceDesc.Methods {
		methods = append(methods, m.MethodName)
	}
	assert.Equal(t, rpcs, methods)
	assert.Equal(t, "medisync/v1/medisync.proto", MediSync_ServiceDesc.Metadata)
}

func TestProtoMatchesMessages(t *testing.T) {
	proto := readProto(t)
	seen := map[string]bool{}
	for _, m := range messageRe.FindAllStringSubmatch(proto, -1) {
		name := m[1]
		seen[name] = true
		goMsg, ok := goMessages[name]
		if !assert.True(t, ok, "no Go type for message %s", name) {
			continue
		}
		var fields []string
		for _, f := range fieldRe.FindAllStringSubmatch(m[2], -1) {
			fields = append(fields, f[1])
		}
		assert.Equal(t, fields, jsonNames(goMsg), name)
	}
	for name := range goMessages {
		assert.True(t, seen[name], "message %s missing from medisync.proto", name)
	}

	for _, m := range rpcRe.FindAllStringSubmatch(proto, -1) {
		assert.Contains(t, goMessages, m[2], m[1])
		assert.Contains(t, goMessages, m[3], m[1])
	}
}
