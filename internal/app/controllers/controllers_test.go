package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/controllers"
	"github.com/yigit/academy/internal/app/repositories/memory"
	"github.com/yigit/academy/internal/app/routes"
	"github.com/yigit/academy/internal/app/services"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewServices(memory.NewRepositories(), zerolog.Nop())
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(svc.CourseService),
		controllers.NewStudentController(svc.StudentService),
		controllers.NewTeacherController(svc.TeacherService),
		controllers.NewLessonController(svc.LessonService),
		controllers.NewFeedbackController(svc.FeedbackService),
		controllers.NewEnrollmentController(svc.EnrollmentService),
		nil,
	)
	return router
}

// do sends body (marshalled unless already a string) and returns the recorder.
func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type record = map[string]any

func create(t *testing.T, r http.Handler, path string, body record) record {
	t.Helper()
	w := do(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[record](t, w)
}

func teacherBody(email string) record {
	return record{"firstName": "Grace", "lastName": "Hopper", "email": email, "phone": "555",
		"specialization": "Compilers", "experience": "12"}
}

func studentBody(email string) record {
	return record{"firstName": "Ada", "lastName": "Lovelace", "email": email, "phone": "555",
		"dateOfBirth": "1995-12-10"}
}

func courseBody(title, instructor string) record {
	return record{"title": title, "description": "d", "instructor": instructor,
		"duration": "4 weeks", "price": "49.90", "category": "Programming"}
}

func TestCourseInstructorEmbeddedInList(t *testing.T) {
	r := newRouter(t)
	teacher := create(t, r, "/api/teachers", teacherBody("grace@example.com"))
	course := create(t, r, "/api/courses", courseBody("Go", teacher["_id"].(string)))
	assert.Equal(t, teacher["_id"], course["instructor"])
	assert.Equal(t, 49.9, course["price"])
	assert.NotEmpty(t, course["createdAt"])

	w := do(t, r, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	courses := decodeBody[[]record](t, w)
	require.Len(t, courses, 1)
	instructor, ok := courses[0]["instructor"].(map[string]any)
	require.True(t, ok, "instructor should be an embedded record: %v", courses[0]["instructor"])
	assert.Equal(t, "grace@example.com", instructor["email"])
	assert.Equal(t, "Compilers", instructor["specialization"])
}

func TestEnrollTwiceThenUnenroll(t *testing.T) {
	r := newRouter(t)
	student := create(t, r, "/api/students", studentBody("ada@example.com"))
	course := create(t, r, "/api/courses", courseBody("Go", ""))
	enroll := "/api/students/" + student["_id"].(string) + "/enroll/" + course["_id"].(string)

	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodPost, enroll, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Student enrolled successfully"}`, w.Body.String())
	}

	students := decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/students", nil))
	require.Len(t, students, 1)
	enrolled := students[0]["enrolledCourses"].([]any)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Go", enrolled[0].(map[string]any)["title"])

	courses := decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/students/"+student["_id"].(string)+"/courses", nil))
	assert.Len(t, courses, 1)

	unenroll := "/api/students/" + student["_id"].(string) + "/unenroll/" + course["_id"].(string)
	w := do(t, r, http.MethodDelete, unenroll, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Student unenrolled successfully"}`, w.Body.String())

	// Unenrolling again is a no-op.
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, unenroll, nil).Code)

	students = decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/students", nil))
	assert.Empty(t, students[0]["enrolledCourses"])
}

func TestEnrollmentNotFound(t *testing.T) {
	r := newRouter(t)
	student := create(t, r, "/api/students", studentBody("ada@example.com"))
	missing := "6650c0ffee0ddba11a5e0001"

	w := do(t, r, http.MethodPost, "/api/students/"+student["_id"].(string)+"/enroll/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Student or course not found"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/students/"+missing+"/unenroll/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Student not found"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/students/"+missing+"/courses", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/students/nope/enroll/"+missing, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackRatingBoundaries(t *testing.T) {
	r := newRouter(t)
	student := create(t, r, "/api/students", studentBody("ada@example.com"))
	course := create(t, r, "/api/courses", courseBody("Go", ""))

	for rating, status := range map[int]int{0: http.StatusBadRequest, 1: http.StatusCreated, 5: http.StatusCreated, 6: http.StatusBadRequest} {
		w := do(t, r, http.MethodPost, "/api/feedback", record{
			"student": student["_id"], "course": course["_id"], "rating": rating, "comment": "ok",
		})
		assert.Equal(t, status, w.Code, "rating %d: %s", rating, w.Body.String())
		if status == http.StatusBadRequest {
			body := decodeBody[record](t, w)
			assert.Contains(t, body["error"], "rating")
			assert.NotEmpty(t, body["details"])
		}
	}

	feedback := decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/feedback", nil))
	require.Len(t, feedback, 2)
	assert.Equal(t, "ada@example.com", feedback[0]["student"].(map[string]any)["email"])
}

func TestDuplicateStudentEmail(t *testing.T) {
	r := newRouter(t)
	create(t, r, "/api/students", studentBody("ada@example.com"))

	w := do(t, r, http.MethodPost, "/api/students", studentBody("ada@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, w.Body.String())
}

func TestUpdateAndDelete(t *testing.T) {
	r := newRouter(t)
	teacher := create(t, r, "/api/teachers", teacherBody("grace@example.com"))
	path := "/api/teachers/" + teacher["_id"].(string)

	w := do(t, r, http.MethodPut, path, record{"bio": "Admiral"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[record](t, w)
	assert.Equal(t, "Admiral", updated["bio"])
	assert.Equal(t, "Grace", updated["firstName"])
	assert.Equal(t, teacher["createdAt"], updated["createdAt"])

	w = do(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Teacher deleted successfully"}`, w.Body.String())

	teachers := decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/teachers", nil))
	assert.Empty(t, teachers)

	w = do(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Teacher not found"}`, w.Body.String())

	w = do(t, r, http.MethodPut, path, record{"bio": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCourseLeavesLessons(t *testing.T) {
	r := newRouter(t)
	course := create(t, r, "/api/courses", courseBody("Go", ""))
	create(t, r, "/api/lessons", record{"title": "Intro", "content": "c", "course": course["_id"],
		"duration": "5m", "order": "1"})

	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/courses/"+course["_id"].(string), nil).Code)

	lessons := decodeBody[[]record](t, do(t, r, http.MethodGet, "/api/lessons", nil))
	require.Len(t, lessons, 1)
	assert.Nil(t, lessons[0]["course"])
}

func TestBadRequests(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"malformed json", http.MethodPost, "/api/courses", `{"title":`, http.StatusBadRequest},
		{"non numeric price", http.MethodPost, "/api/courses", `{"title":"Go","price":"cheap"}`, http.StatusBadRequest},
		{"missing fields", http.MethodPost, "/api/teachers", record{"firstName": "G"}, http.StatusBadRequest},
		{"malformed id", http.MethodPut, "/api/lessons/123", record{"title": "x"}, http.StatusBadRequest},
		{"malformed id on get", http.MethodGet, "/api/feedback/xyz", nil, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/courses/6650c0ffee0ddba11a5e0001", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decodeBody[record](t, w)["error"])
		})
	}
}
