package memory

import "github.com/dentalflow/clinic-backend/internal/domain/entities"

// Sample records shown when the process runs without a remote store.

func seedUser() entities.User {
	return entities.User{
		ID:     "u1",
		Name:   "Dr. Emily Carter",
		Role:   "General Dentist",
		Email:  "emily@dentalflow.com",
		Avatar: "https://i.pravatar.cc/150?img=47",
	}
}

func seedPatients() []*entities.Patient {
	return []*entities.Patient{
		{
			ID:              "p1",
			Name:            "Olivia Rhye",
			Avatar:          "https://i.pravatar.cc/150?img=1",
			DOB:             "1992-08-15",
			Phone:           "(555) 123-4567",
			Email:           "olivia@example.com",
			LastVisit:       "2023-10-15",
			NextAppointment: "2024-04-22T10:00:00",
			Status:          entities.PatientStatusActive,
			Address:         "123 Maple Ave, Springfield",
		},
		{
			ID:              "p2",
			Name:            "Phoenix Baker",
			Avatar:          "https://i.pravatar.cc/150?img=2",
			DOB:             "1985-11-20",
			Phone:           "(555) 987-6543",
			Email:           "phoenix@example.com",
			LastVisit:       "2023-09-01",
			NextAppointment: "2024-05-10T14:30:00",
			Status:          entities.PatientStatusActive,
			Address:         "456 Oak St, Metropolis",
		},
		{
			ID:        "p3",
			Name:      "Lana Steiner",
			Avatar:    "https://i.pravatar.cc/150?img=3",
			DOB:       "2001-05-30",
			Phone:     "(555) 234-5678",
			Email:     "lana@example.com",
			LastVisit: "2024-03-20",
			Status:    entities.PatientStatusNew,
			Address:   "789 Pine Ln, Gotham",
		},
		{
			ID:        "p4",
			Name:      "Demi Wilkinson",
			Avatar:    "https://i.pravatar.cc/150?img=4",
			DOB:       "1978-02-10",
			Phone:     "(555) 876-5432",
			Email:     "demi@example.com",
			LastVisit: "2022-05-18",
			Status:    entities.PatientStatusInactive,
			Address:   "321 Elm St, Smallville",
		},
	}
}

func seedAppointments() []*entities.Appointment {
	return []*entities.Appointment{
		{
			ID:            "appt1",
			PatientID:     "p1",
			PatientName:   "Olivia Rhye",
			PatientAvatar: "https://i.pravatar.cc/150?img=1",
			DateTime:      "2024-04-22T10:00:00",
			Type:          "Routine Check-up",
			Status:        entities.AppointmentStatusScheduled,
			Notes:         "Patient reported minor sensitivity.",
		},
		{
			ID:            "appt2",
			PatientID:     "p2",
			PatientName:   "Phoenix Baker",
			PatientAvatar: "https://i.pravatar.cc/150?img=2",
			DateTime:      "2024-05-10T14:30:00",
			Type:          "Root Canal",
			Status:        entities.AppointmentStatusScheduled,
			Notes:         "Follow up from last x-ray.",
		},
		{
			ID:            "appt3",
			PatientID:     "p3",
			PatientName:   "Lana Steiner",
			PatientAvatar: "https://i.pravatar.cc/150?img=3",
			DateTime:      "2024-03-20T09:00:00",
			Type:          "Consultation",
			Status:        entities.AppointmentStatusCompleted,
			Notes:         "New patient intake.",
		},
	}
}

func seedInvoices() []*entities.Invoice {
	return []*entities.Invoice{
		{
			ID:            "inv1",
			InvoiceNumber: "INV-00124",
			PatientID:     "p2",
			IssueDate:     "2024-10-15",
			DueDate:       "2024-10-30",
			Items: []entities.InvoiceItem{
				{ID: "item1", Description: "Dental X-Ray", Quantity: 2, UnitPrice: 50},
				{ID: "item2", Description: "Standard Cleaning", Quantity: 1, UnitPrice: 150},
			},
			Subtotal: 250,
			Tax:      0,
			Discount: 0,
			Total:    250,
			Status:   entities.InvoiceStatusPaid,
		},
		{
			ID:            "inv2",
			InvoiceNumber: "INV-00123",
			PatientID:     "p1",
			IssueDate:     "2024-10-12",
			DueDate:       "2024-10-27",
			Items: []entities.InvoiceItem{
				{ID: "item3", Description: "Consultation", Quantity: 1, UnitPrice: 80},
				{ID: "item4", Description: "Fluoride Treatment", Quantity: 1, UnitPrice: 100.50},
			},
			Subtotal: 180.50,
			Tax:      0,
			Discount: 0,
			Total:    180.50,
			Status:   entities.InvoiceStatusUnpaid,
		},
	}
}
