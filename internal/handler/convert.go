package handler

import (
	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/model"
)

func toPBUser(u *model.User) *pb.User {
	return &pb.User{UserId: u.UserID, Id: u.ID, Email: u.Email, Type: string(u.Type)}
}

func toPBProfile(p model.Profile) *pb.Profile {
	out := &pb.Profile{Role: string(p.Role())}
	switch p := p.(type) {
	case *model.Patient:
		out.Patient = &pb.Patient{
			Id:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Contact:   p.Contact,
			Address:   p.Address,
			Email:     p.Email,
		}
	case *model.Doctor:
		out.Doctor = toPBDoctor(p)
	case *model.Pharmacist:
		out.Pharmacist = &pb.Pharmacist{
			Id:           p.ID,
			Name:         p.Name,
			PharmacyName: p.PharmacyName,
			Address:      p.Address,
			Phone:        p.Phone,
			Email:        p.Email,
		}
	}
	return out
}

func toPBDoctor(d *model.Doctor) *pb.Doctor {
	return &pb.Doctor{
		Id:             d.ID,
		Name:           d.Name,
		ClinicLocation: d.ClinicLocation,
		Contact:        d.Contact,
		Specialization: d.Specialization,
		Email:          d.Email,
	}
}

func toPBMedicine(m *model.Medicine) *pb.Medicine {
	return &pb.Medicine{
		Id:           m.ID,
		MedicineName: m.MedicineName,
		Ingredients:  m.Ingredients,
		PharmacyName: m.PharmacyName,
		Address:      m.Address,
		Availability: m.Availability,
	}
}

func toPBMedicines(ms []model.Medicine) []*pb.Medicine {
	out := make([]*pb.Medicine, len(ms))
	for i := range ms {
		out[i] = toPBMedicine(&ms[i])
	}
	return out
}

func toPBAppointment(a *model.Appointment) *pb.Appointment {
	return &pb.Appointment{
		Id:          a.ID,
		PatientId:   a.PatientID,
		PatientName: a.PatientName,
		DoctorId:    a.DoctorID,
		DoctorName:  a.DoctorName,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Confirm:     a.Confirm,
	}
}

func toPBAppointments(as []model.Appointment) []*pb.Appointment {
	out := make([]*pb.Appointment, len(as))
	for i := range as {
		out[i] = toPBAppointment(&as[i])
	}
	return out
}
