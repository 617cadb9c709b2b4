package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"classroom-sync/internal/auth"
	"classroom-sync/internal/concurrency"
	"classroom-sync/internal/config"
	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/export"
	"classroom-sync/internal/grading"
	"classroom-sync/internal/providers/classroom"
	"classroom-sync/internal/sftpclient"
)

func main() {
	var (
		worksPath  = flag.String("out", "classroom_works.csv", "works csv output path")
		gradesPath = flag.String("grades-out", "", "grade breakdown csv output path (empty = skip)")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated CSVs via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer rootCancel()

	cfg := config.Load()

	if dir := filepath.Dir(*worksPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	oc := auth.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret)
	httpClient, err := auth.Client(rootCtx, oc, cfg.TokenFile)
	if err != nil {
		log.Fatalf("auth error: %v (run the login tool first)", err)
	}
	provider := classroom.Provider{C: classroom.New(cfg.ClassroomBaseURL, httpClient)}

	courses, err := provider.ListCourses(rootCtx)
	if err != nil {
		log.Fatalf("list courses error: %v", err)
	}

	all, errs := concurrency.ProcessParallel(rootCtx, courses, concurrency.DefaultOptions(),
		func(ctx context.Context, index int, course domain.Course) (export.CourseWorks, error) {
			graded, materials, err := provider.ListWork(ctx, course.ID)
			if err != nil {
				return export.CourseWorks{}, err
			}
			works, problems, err := enrich.Aggregate(graded, materials)
			if err != nil {
				return export.CourseWorks{}, err
			}
			for _, p := range problems {
				log.Printf("WARN: %s: item %s: %v", course.Name, p.ItemID, p.Err)
			}
			return export.CourseWorks{Course: course, Works: works}, nil
		})
	for _, err := range errs {
		if err != nil {
			log.Printf("WARN: %v (exporting the courses that did fetch)", err)
		}
	}

	fetched := all[:0]
	total := 0
	for _, cw := range all {
		if cw.Course.ID != "" {
			fetched = append(fetched, cw)
			total += len(cw.Works)
		}
	}

	if err := export.WriteWorksCSVFile(*worksPath, fetched); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d work items across %d courses to %s", total, len(fetched), *worksPath)

	if *gradesPath != "" {
		if err := writeGrades(rootCtx, cfg, provider, fetched, *gradesPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote grade breakdowns to %s", *gradesPath)
	}

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		paths := []string{*worksPath}
		if *gradesPath != "" {
			paths = append(paths, *gradesPath)
		}
		for _, p := range paths {
			upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
			err := sftpclient.UploadFile(upCtx, upCfg, p, filepath.Base(p))
			upCancel()
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, filepath.Base(p))
		}
	}
}

// writeGrades builds one GradeReport per course that has a matching policy
// and graded submissions.
func writeGrades(ctx context.Context, cfg config.Config, provider classroom.Provider, courses []export.CourseWorks, path string) error {
	policies, err := domain.LoadPolicies(cfg.PoliciesFile)
	if err != nil {
		return err
	}

	var reports []export.GradeReport
	for _, cw := range courses {
		policy := grading.MatchPolicy(cw.Course.Name, policies)
		if policy == nil {
			continue
		}

		var workIDs []string
		for _, w := range cw.Works {
			if !w.IsMaterial {
				workIDs = append(workIDs, w.ID)
			}
		}
		scores, err := provider.Scores(ctx, cw.Course.ID, workIDs)
		if err != nil {
			log.Printf("WARN: %s: submissions: %v", cw.Course.Name, err)
			continue
		}

		records := grading.BuildRecords(cw.Works, scores, policy)
		projected, coverage, breakdown := grading.Calculate(records, *policy)
		reports = append(reports, export.GradeReport{
			CourseName: cw.Course.Name,
			Projected:  projected,
			Coverage:   coverage,
			Breakdown:  breakdown,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteGradesCSV(f, reports); err != nil {
		return err
	}
	return f.Close()
}
