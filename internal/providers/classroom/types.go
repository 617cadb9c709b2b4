package classroom

/* -------- Wire types (Classroom v1) -------- */

type Course struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Section       string `json:"section"`
	Room          string `json:"room"`
	AlternateLink string `json:"alternateLink"`
	CourseState   string `json:"courseState"`
}

type ListCoursesResponse struct {
	Courses       []Course `json:"courses"`
	NextPageToken string   `json:"nextPageToken"`
}

// DueDate/DueTime arrive as separate optional fragments; both absent means
// the item never had a deadline at all.
type DueDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type DueTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type CourseWork struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	DueDate       *DueDate `json:"dueDate"`
	DueTime       *DueTime `json:"dueTime"`
	CreationTime  string   `json:"creationTime"`
	MaxPoints     float64  `json:"maxPoints"`
	WorkType      string   `json:"workType"`
	AlternateLink string   `json:"alternateLink"`
}

type ListCourseWorkResponse struct {
	CourseWork    []CourseWork `json:"courseWork"`
	NextPageToken string       `json:"nextPageToken"`
}

// CourseWorkMaterial shares the CourseWork shape minus grading fields; the
// API never sets due dates or work types on it.
type ListMaterialsResponse struct {
	CourseWorkMaterial []CourseWork `json:"courseWorkMaterial"`
	NextPageToken      string       `json:"nextPageToken"`
}

type Submission struct {
	ID            string   `json:"id"`
	CourseWorkID  string   `json:"courseWorkId"`
	State         string   `json:"state"` // TURNED_IN, RETURNED, CREATED
	AssignedGrade *float64 `json:"assignedGrade"`
	DraftGrade    *float64 `json:"draftGrade"`
}

type ListSubmissionsResponse struct {
	StudentSubmissions []Submission `json:"studentSubmissions"`
	NextPageToken      string       `json:"nextPageToken"`
}

type TeacherProfileName struct {
	FullName string `json:"fullName"`
}

type TeacherProfile struct {
	ID           string             `json:"id"`
	Name         TeacherProfileName `json:"name"`
	EmailAddress string             `json:"emailAddress"`
	PhotoURL     string             `json:"photoUrl"`
}

type Teacher struct {
	UserID  string         `json:"userId"`
	Profile TeacherProfile `json:"profile"`
}

type ListTeachersResponse struct {
	Teachers      []Teacher `json:"teachers"`
	NextPageToken string    `json:"nextPageToken"`
}
