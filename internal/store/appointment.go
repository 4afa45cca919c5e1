package store

import (
	"context"

	"medisync-api/internal/model"
)

const appointmentCols = `id, patient_id, patient_name, doctor_id, doctor_name, start_time, end_time, confirm`

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO appointment (patient_id, patient_name, doctor_id, doctor_name, start_time, end_time, confirm)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		a.PatientID, a.PatientName, a.DoctorID, a.DoctorName, a.StartTime, a.EndTime, a.Confirm,
	).Scan(&a.ID)
	return wrap("create appointment", err)
}

func (s *Store) queryAppointments(ctx context.Context, op, q string, args ...any) ([]model.Appointment, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.PatientID, &a.PatientName, &a.DoctorID, &a.DoctorName,
			&a.StartTime, &a.EndTime, &a.Confirm,
		); err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, a)
	}
	return out, wrap(op, rows.Err())
}

func (s *Store) AppointmentsByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	return s.queryAppointments(ctx, "appointments by doctor",
		`SELECT `+appointmentCols+` FROM appointment WHERE doctor_id = $1 ORDER BY start_time, id`, doctorID)
}

func (s *Store) AppointmentsByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	return s.queryAppointments(ctx, "appointments by patient",
		`SELECT `+appointmentCols+` FROM appointment WHERE patient_id = $1 ORDER BY start_time, id`, patientID)
}

// Confirmation is one staged toggle of an appointment's confirm flag.
type Confirmation struct {
	ID      int64
	Confirm bool
}

// CommitConfirmations applies all toggles in one statement keyed by id.
// Rows not owned by doctorID are left alone and absent from the result.
func (s *Store) CommitConfirmations(ctx context.Context, doctorID int64, cs []Confirmation) ([]model.Appointment, error) {
	ids := make([]int64, len(cs))
	flags := make([]bool, len(cs))
	for i, c := range cs {
		ids[i], flags[i] = c.ID, c.Confirm
	}
	return s.queryAppointments(ctx, "commit confirmations",
		`UPDATE appointment AS a SET confirm = v.confirm
		 FROM unnest($1::bigint[], $2::boolean[]) AS v(id, confirm)
		 WHERE a.id = v.id AND a.doctor_id = $3
		 RETURNING a.id, a.patient_id, a.patient_name, a.doctor_id, a.doctor_name, a.start_time, a.end_time, a.confirm`,
		ids, flags, doctorID)
}
