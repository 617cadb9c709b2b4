package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"classroom-sync/internal/auth"
	"classroom-sync/internal/config"
	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/grading"
	"classroom-sync/internal/providers/classroom"
)

func main() {
	courseFilter := flag.String("course", "", "only report courses whose name contains this (case-insensitive)")
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

	policies, err := domain.LoadPolicies(cfg.PoliciesFile)
	if err != nil {
		log.Fatal(err)
	}
	if len(policies) == 0 {
		log.Printf("no policies in %s; every course falls back to a simple average", cfg.PoliciesFile)
	}

	courses, err := provider.ListCourses(ctx)
	if err != nil {
		log.Fatalf("list courses error: %v", err)
	}

	for _, course := range courses {
		if *courseFilter != "" &&
			!strings.Contains(strings.ToLower(course.Name), strings.ToLower(*courseFilter)) {
			continue
		}
		if err := reportCourse(ctx, provider, policies, course); err != nil {
			log.Printf("WARN: %s: %v", course.Name, err)
		}
	}
}

func reportCourse(ctx context.Context, provider classroom.Provider, policies []domain.GradingPolicy, course domain.Course) error {
	graded, materials, err := provider.ListWork(ctx, course.ID)
	if err != nil {
		return err
	}
	works, _, err := enrich.Aggregate(graded, materials)
	if err != nil {
		return err
	}

	var workIDs []string
	for _, w := range works {
		if !w.IsMaterial {
			workIDs = append(workIDs, w.ID)
		}
	}
	scores, err := provider.Scores(ctx, course.ID, workIDs)
	if err != nil {
		return err
	}

	policy := grading.MatchPolicy(course.Name, policies)
	records := grading.BuildRecords(works, scores, policy)

	fmt.Printf("\n%s\n%s\n", course.Name, strings.Repeat("=", len(course.Name)))
	if len(records) == 0 {
		fmt.Println("  no graded submissions yet")
		return nil
	}

	for _, r := range records {
		fmt.Printf("  %-40s %-14s %5.1f/%-5.1f (%.1f%%)\n",
			r.AssignmentTitle, r.Category, r.EarnedPoints, r.MaxPoints, r.Percentage)
	}

	if policy == nil {
		fmt.Printf("  no grading policy matched; simple average: %.2f%%\n", grading.SimpleAverage(records))
		return nil
	}

	projected, coverage, breakdown := grading.Calculate(records, *policy)
	fmt.Println()
	for _, cat := range breakdown {
		rule := ""
		if cat.Rule != "" {
			rule = " (" + cat.Rule + ")"
		}
		fmt.Printf("  %-20s weight %.2f  avg %.2f%%  from %d grade(s)%s\n",
			cat.Name, cat.Weight, cat.Average, cat.Count, rule)
	}
	fmt.Printf("  projected grade: %.2f%% (based on %.0f%% of the syllabus weight)\n", projected, coverage)
	return nil
}
