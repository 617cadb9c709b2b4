package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"classroom-sync/internal/auth"
	"classroom-sync/internal/concurrency"
	"classroom-sync/internal/config"
	"classroom-sync/internal/devutil"
	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/notify"
	"classroom-sync/internal/providers/classroom"
	"classroom-sync/internal/sync"
)

func main() {
	var (
		verbose    = flag.Bool("v", false, "print per-course fetch details")
		noSnapshot = flag.Bool("no-snapshot", false, "skip snapshot load/save and change detection")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := config.Load()

	oc := auth.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret)
	httpClient, err := auth.Client(ctx, oc, cfg.TokenFile)
	if err != nil {
		log.Fatalf("auth error: %v (run the login tool first)", err)
	}
	provider := classroom.Provider{C: classroom.New(cfg.ClassroomBaseURL, httpClient)}

	courses, err := provider.ListCourses(ctx)
	if err != nil {
		log.Fatalf("list courses error: %v", err)
	}
	log.Printf("fetched %d active courses", len(courses))

	// Each course's feeds are independent, so fan out.
	snapshots, errs := concurrency.ProcessParallel(ctx, courses, concurrency.DefaultOptions(),
		func(ctx context.Context, index int, course domain.Course) (sync.CourseSnapshot, error) {
			graded, materials, err := provider.ListWork(ctx, course.ID)
			if err != nil {
				return sync.CourseSnapshot{}, err
			}

			works, problems, err := enrich.Aggregate(graded, materials)
			if err != nil {
				return sync.CourseSnapshot{}, fmt.Errorf("course %s: %w", course.Name, err)
			}
			for _, p := range problems {
				log.Printf("WARN: %s: item %s: %v", course.Name, p.ItemID, p.Err)
			}

			teachers, err := provider.ListTeachers(ctx, course.ID)
			if err != nil {
				// Teachers are display sugar; a failed roster fetch should
				// not lose the course.
				log.Printf("WARN: %s: teachers: %v", course.Name, err)
			}

			return sync.CourseSnapshot{Course: course, Teachers: teachers, Works: works}, nil
		})

	for _, err := range errs {
		if err != nil {
			log.Printf("WARN: %v", err)
		}
	}

	// A failed fetch leaves a zero value at its index; drop those so they
	// neither pollute the snapshot nor show up as removals next run.
	kept := snapshots[:0]
	for _, cs := range snapshots {
		if cs.Course.ID != "" {
			kept = append(kept, cs)
		}
	}
	snapshots = kept

	now := time.Now()
	curr := &sync.Snapshot{TakenAt: now, Courses: snapshots}

	for _, cs := range snapshots {
		fmt.Printf("%s: %d items, %d pending\n",
			cs.Course.Name, len(cs.Works), domain.PendingCount(cs.Works, now))
		if *verbose {
			for _, w := range cs.Works {
				fmt.Printf("  %v\n", devutil.Pick(w, "id", "title", "category", "deadline"))
			}
		}
	}

	if *noSnapshot {
		return
	}

	prev, err := sync.LoadSnapshot(cfg.SnapshotFile)
	if err != nil {
		log.Fatal(err)
	}

	changes := sync.Diff(prev, curr)
	reportChanges(changes)

	if err := curr.Save(cfg.SnapshotFile); err != nil {
		log.Fatal(err)
	}
	log.Printf("snapshot saved to %s", cfg.SnapshotFile)

	// Only alert on changes, and only after the first run: a first-run
	// snapshot would flood the phone with every existing assignment.
	if prev != nil && !changes.Empty() {
		sendAlerts(ctx, cfg, changes, now)
	}
}

func reportChanges(changes sync.Changes) {
	if changes.Empty() {
		log.Print("no changes since last run")
		return
	}
	for _, c := range changes.Added {
		log.Printf("NEW: [%s] %s", c.CourseName, c.Work.Title)
	}
	for _, c := range changes.Updated {
		log.Printf("UPDATED: [%s] %s", c.CourseName, c.Work.Title)
	}
	for _, c := range changes.Removed {
		log.Printf("REMOVED: [%s] %s", c.CourseName, c.Work.Title)
	}
}

func sendAlerts(ctx context.Context, cfg config.Config, changes sync.Changes, now time.Time) {
	if cfg.WhatsAppPhone == "" || cfg.WhatsAppAPIKey == "" {
		return
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("WARN: bad TIMEZONE %q, using UTC", cfg.Timezone)
		loc = time.UTC
	}

	n := notify.New(cfg.WhatsAppPhone, cfg.WhatsAppAPIKey)
	for _, c := range changes.Added {
		msg := notify.NewWorkAlert(notify.Item{CourseName: c.CourseName, Work: c.Work}, now, loc)
		if err := n.Send(ctx, msg); err != nil {
			log.Printf("WARN: whatsapp: %v", err)
			return
		}
	}
}
