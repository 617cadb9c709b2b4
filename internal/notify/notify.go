// Package notify builds deadline reminder messages and delivers them over
// the CallMeBot WhatsApp gateway.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/httpx"
)

const DefaultBaseURL = "https://api.callmebot.com/whatsapp.php"

// Item is one work item together with the course it belongs to, which the
// flat EnrichedWork does not carry.
type Item struct {
	CourseName string
	Work       domain.EnrichedWork
}

// Notifier sends plain-text messages to a single phone number. CallMeBot
// takes everything in the query string of a GET.
type Notifier struct {
	Phone   string
	APIKey  string
	BaseURL string
	HTTP    *http.Client
	Retry   httpx.RetryConfig
}

func New(phone, apiKey string) *Notifier {
	return &Notifier{
		Phone:   phone,
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Retry:   httpx.DefaultRetryConfig(),
	}
}

// Send delivers one message, retrying transient gateway errors.
func (n *Notifier) Send(ctx context.Context, message string) error {
	q := url.Values{}
	q.Set("phone", n.Phone)
	q.Set("text", message)
	q.Set("apikey", n.APIKey)

	buildReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"?"+q.Encode(), nil)
	}

	if _, _, err := httpx.DoWithRetry(ctx, n.HTTP, buildReq, n.Retry); err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	return nil
}

// urgency classifies how close a deadline is, by whole days left.
func urgency(daysLeft int) string {
	switch {
	case daysLeft < 2:
		return "[URGENT]"
	case daysLeft < 5:
		return "[SOON]"
	default:
		return "[OK]"
	}
}

// DailySummary renders the pending work items into one reminder message,
// most urgent first. Items without a future deadline are left out. Times
// render in loc.
func DailySummary(items []Item, now time.Time, loc *time.Location) string {
	pending := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Work.Deadline != nil && it.Work.Deadline.After(now) {
			pending = append(pending, it)
		}
	}
	if len(pending) == 0 {
		return "No pending assignments today!"
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Work.Deadline.Before(*pending[j].Work.Deadline)
	})

	var b strings.Builder
	b.WriteString("Daily Assignment Summary\n")
	b.WriteString(now.In(loc).Format("January 02, 2006 - 03:04 PM"))
	b.WriteString("\n\n")

	for i, it := range pending {
		daysLeft := int(it.Work.Deadline.Sub(now).Hours() / 24)
		fmt.Fprintf(&b, "%s %d. [%s] %s\n", urgency(daysLeft), i+1, it.CourseName, it.Work.Title)
		fmt.Fprintf(&b, "   Due: %s (%d days left)\n\n",
			it.Work.Deadline.In(loc).Format("Jan 02, 03:04 PM"), daysLeft)
	}
	return b.String()
}

// NewWorkAlert renders a single freshly-posted item. Materials carry no
// deadline and get a shorter form.
func NewWorkAlert(it Item, now time.Time, loc *time.Location) string {
	course := it.CourseName
	if course == "" {
		course = "Unknown Course"
	}

	var b strings.Builder
	if it.Work.Deadline != nil {
		daysLeft := int(it.Work.Deadline.Sub(now).Hours() / 24)
		b.WriteString("New Assignment Posted!\n\n")
		fmt.Fprintf(&b, "Course: %s\n", course)
		fmt.Fprintf(&b, "Title: %s\n", it.Work.Title)
		fmt.Fprintf(&b, "Due: %s (%d days left) %s\n",
			it.Work.Deadline.In(loc).Format("Jan 02, 03:04 PM"), daysLeft, urgency(daysLeft))
	} else {
		b.WriteString("New Material Posted!\n\n")
		fmt.Fprintf(&b, "Course: %s\n", course)
		fmt.Fprintf(&b, "Title: %s\n", it.Work.Title)
	}
	return b.String()
}
