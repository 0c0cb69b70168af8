package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgetting-curve/api/internal/service"
	"github.com/forgetting-curve/api/internal/testutils"
)

// newScenarioServer wires real services over in-memory stores behind the
// full route tree. The sqlmock connection supplies transaction begin,
// commit and rollback; the stores themselves never touch it.
func newScenarioServer(t *testing.T) http.Handler {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 64; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}

	users := testutils.NewFakeUserStore()
	infos := testutils.NewFakeInformationStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userService := service.NewUserService(db, users, infos, nil, logger)
	informationService := service.NewInformationService(db, users, infos, logger)

	userHandler := NewUserHandler(userService)
	informationHandler := NewInformationHandler(informationService)

	r := chi.NewRouter()
	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Route("/{nickname}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/", userHandler.UpdateUser)
			r.Delete("/", userHandler.DeleteUser)
			r.Route("/information", func(r chi.Router) {
				r.Post("/", informationHandler.CreateInformation)
				r.Get("/", informationHandler.ListInformation)
				r.Delete("/{id}", informationHandler.DeleteInformation)
			})
		})
	})
	return r
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// TestUserLifecycleOverHTTP drives a full user lifecycle through the HTTP
// surface: registration, duplicate rejection, information records with
// their review schedule, ownership-scoped deletes, and the cascade on
// user deletion.
func TestUserLifecycleOverHTTP(t *testing.T) {
	server := newScenarioServer(t)

	// Register alice.
	rr := do(t, server, http.MethodPost, "/users",
		`{"nickname":"alice","first_name":"Alice","last_name":"Smith","age":30,"job":"engineer"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())

	// A second registration under the same nickname is rejected.
	rr = do(t, server, http.MethodPost, "/users",
		`{"nickname":"alice","first_name":"Another","last_name":"Person","age":40,"job":"teacher"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Nickname already exists", decodeBody(t, rr)["detail"])

	// Exactly one alice exists.
	rr = do(t, server, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var users []UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].FirstName)

	// Alice records two facts.
	rr = do(t, server, http.MethodPost, "/users/alice/information",
		`{"information":"go slices","explanation":"grow by doubling"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = do(t, server, http.MethodPost, "/users/alice/information",
		`{"information":"go maps","explanation":"iteration order is random"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	// Both come back in insertion order with strictly increasing
	// review checkpoints.
	rr = do(t, server, http.MethodGet, "/users/alice/information", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var items []InformationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "go slices", items[0].Information)
	assert.Equal(t, "go maps", items[1].Information)
	for _, item := range items {
		assert.True(t, item.RepeatDate1.Before(item.RepeatDate2))
		assert.True(t, item.RepeatDate2.Before(item.RepeatDate3))
		assert.True(t, item.RepeatDate3.Before(item.RepeatDate4))
		assert.True(t, item.RepeatDate4.Before(item.RepeatDate5))
	}

	// Bob cannot delete alice's record through his own scope.
	rr = do(t, server, http.MethodPost, "/users",
		`{"nickname":"bob","first_name":"Bob","last_name":"Jones","age":25,"job":"teacher"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	firstID := items[0].ID
	rr = do(t, server, http.MethodDelete, "/users/bob/information/"+strconv.FormatInt(firstID, 10), "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Information not found", decodeBody(t, rr)["detail"])

	// Alice can.
	rr = do(t, server, http.MethodDelete, "/users/alice/information/"+strconv.FormatInt(firstID, 10), "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, server, http.MethodGet, "/users/alice/information", "")
	require.Equal(t, http.StatusOK, rr.Code)
	items = items[:0]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "go maps", items[0].Information)

	// Updating alice changes only age and job.
	rr = do(t, server, http.MethodPut, "/users/alice", `{"age":31,"job":"manager"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, server, http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, float64(31), body["age"])
	assert.Equal(t, "manager", body["job"])
	assert.Equal(t, "Alice", body["first_name"])

	// Deleting alice cascades to her remaining information.
	rr = do(t, server, http.MethodDelete, "/users/alice", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, server, http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody(t, rr)["detail"])

	rr = do(t, server, http.MethodGet, "/users/alice/information", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody(t, rr)["detail"])

	// Bob is untouched.
	rr = do(t, server, http.MethodGet, "/users/bob", "")
	require.Equal(t, http.StatusOK, rr.Code)

	// Multibyte fields within the character limits pass the whole stack.
	rr = do(t, server, http.MethodPost, "/users",
		`{"nickname":"пользователь","first_name":"Мария","last_name":"Иванова","age":30,"job":"инженер"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())

	rr = do(t, server, http.MethodGet, "/users/пользователь", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Мария", decodeBody(t, rr)["first_name"])

	// Unknown routes answer with the JSON error envelope.
	rr = do(t, server, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeBody(t, rr)["detail"])
}

