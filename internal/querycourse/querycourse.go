// Package querycourse speaks the NTUST QueryCourse wire protocol.
//
// This file contains the request and record shapes of the remote API.
package querycourse

// DefaultURL is the production endpoint of the course query service.
const DefaultURL = "https://querycourse.ntust.edu.tw/querycourse/api/courses"

// Course is one course section as returned by the search endpoint.
// Field names follow the upstream JSON contract, underscores included.
type Course struct {
	Semester      string  `json:"Semester"`
	CourseNo      string  `json:"CourseNo"`
	CourseName    string  `json:"CourseName"`
	CourseTeacher string  `json:"CourseTeacher"`
	Dimension     string  `json:"Dimension"`
	CreditPoint   float64 `json:"CreditPoint"`
	RequireOption string  `json:"RequireOption"`
	AllYear       string  `json:"AllYear"`

	// ChooseStudent is the live enrollment figure. The upstream is not
	// consistent about its type, so the raw token is preserved.
	ChooseStudent Count `json:"ChooseStudent"`

	Restrict1    string `json:"Restrict1"`
	Restrict2    string `json:"Restrict2"` // seat limit label, digits when set
	ThreeStudent int    `json:"ThreeStudent"`
	AllStudent   int    `json:"AllStudent"`
	NTURestrict  string `json:"NTURestrict"`
	NTNURestrict string `json:"NTNURestrict"`

	CourseTimes    string  `json:"CourseTimes"`
	PracticalTimes string  `json:"PracticalTimes"`
	ClassRoomNo    string  `json:"ClassRoomNo"`
	ThreeNode      *string `json:"ThreeNode"`
	Node           string  `json:"Node"`
	Contents       string  `json:"Contents"`

	NTUPeople    int `json:"NTU_People"`
	NTNUPeople   int `json:"NTNU_People"`
	AbroadPeople int `json:"AbroadPeople"`
}

// QueryRequest is the POST body of the search endpoint. Zero values are
// meaningful to the upstream, so every field is always serialized.
// OnleyNTUST is misspelled in the upstream contract.
type QueryRequest struct {
	Semester          string `json:"Semester"`
	CourseNo          string `json:"CourseNo"`
	CourseName        string `json:"CourseName"`
	CourseTeacher     string `json:"CourseTeacher"`
	Dimension         string `json:"Dimension"`
	CourseNotes       string `json:"CourseNotes"`
	CampusNotes       string `json:"CampusNotes"`
	ForeignLanguage   int    `json:"ForeignLanguage"`
	OnlyGeneral       int    `json:"OnlyGeneral"`
	OnleyNTUST        int    `json:"OnleyNTUST"`
	OnlyMaster        int    `json:"OnlyMaster"`
	OnlyUnderGraduate int    `json:"OnlyUnderGraduate"`
	OnlyNode          int    `json:"OnlyNode"`
	OnlyIntensive     int    `json:"OnlyIntensive"`
	Language          string `json:"Language"`
}

// DefaultQuery returns the watcher's standing query for a semester: every
// section, Chinese labels. The single-space CourseTeacher is an upstream
// quirk the service expects.
func DefaultQuery(semester string) QueryRequest {
	return QueryRequest{
		Semester:      semester,
		CourseTeacher: " ",
		Language:      "zh",
	}
}
