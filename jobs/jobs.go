package jobs

import (
	"context"
	"log"
	"os"
	"strings"

	"MediLink360/store"

	"github.com/robfig/cron/v3"
)

// OrphanSweep walks the upload directory and reports every file no
// record references. Artifact writes and record writes are not atomic,
// so a crash in between can strand a file; the sweep makes that
// visible. It never deletes anything.
type OrphanSweep struct {
	Dir           string
	Doctors       store.DoctorStore
	Patients      store.PatientStore
	Prescriptions store.PrescriptionStore
}

/*
* Collect every path a record points at
* Any file on disk outside that set is an orphan
 */
func (s *OrphanSweep) Run() {
	ctx := context.Background()
	referenced := make(map[string]bool)

	doctors, err := s.Doctors.List(ctx)
	if err != nil {
		log.Println("Orphan sweep: error listing doctors: ", err)
		return
	}
	for _, d := range doctors {
		referenced[uploadName(d.ProfilePicture)] = true
	}

	patients, err := s.Patients.List(ctx)
	if err != nil {
		log.Println("Orphan sweep: error listing patients: ", err)
		return
	}
	for _, p := range patients {
		referenced[uploadName(p.ProfilePicture)] = true
	}

	prescriptions, err := s.Prescriptions.FindAll(ctx)
	if err != nil {
		log.Println("Orphan sweep: error listing prescriptions: ", err)
		return
	}
	for _, p := range prescriptions {
		referenced[uploadName(p.PDFPath)] = true
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		log.Println("Orphan sweep: error reading upload dir: ", err)
		return
	}

	orphans := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		orphans++
		log.Println("Orphan sweep: unreferenced upload: ", entry.Name())
	}
	log.Println("Orphan sweep finished, orphans found: ", orphans)
}

func uploadName(path string) string {
	return strings.TrimPrefix(path, "/uploads/")
}

// StartDailyScheduler runs the sweep once a day.
func StartDailyScheduler(sweep *OrphanSweep) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", sweep.Run); err != nil {
		log.Println("Error scheduling orphan sweep: ", err)
		return c
	}
	c.Start()
	return c
}
