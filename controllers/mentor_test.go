package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mentorRecordJSON = `{"success":true,"mentor":{"mentor_id":"M1","name":"Ravi","email":"ravi@example.com"}}`

func TestGetMentorInfo(t *testing.T) {
	t.Run("self lookup", func(t *testing.T) {
		app := newTestApp(t)
		startFakeBackend(t, map[string]string{"getMentorByEmail": mentorRecordJSON})

		req := jsonRequest(http.MethodGet, "/api/mentor/info?email=ravi@example.com", "")
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		mentor, ok := body["mentor"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "M1", mentor["mentor_id"])
	})

	t.Run("cannot look up another mentor", func(t *testing.T) {
		app := newTestApp(t)
		fb := startFakeBackend(t, nil)

		req := jsonRequest(http.MethodGet, "/api/mentor/info?email=other@example.com", "")
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Can only request your own mentor info", body["error"])
		assert.Zero(t, fb.callCount())
	})

	t.Run("not enrolled as mentor", func(t *testing.T) {
		app := newTestApp(t)
		startFakeBackend(t, map[string]string{
			"getMentorByEmail": `{"success":true}`,
		})

		req := jsonRequest(http.MethodGet, "/api/mentor/info?email=ravi@example.com", "")
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Mentor not found", body["error"])
	})
}

func TestGetMentorSlots(t *testing.T) {
	app := newTestApp(t)

	t.Run("mentorId required", func(t *testing.T) {
		startFakeBackend(t, nil)
		req := jsonRequest(http.MethodGet, "/api/mentor/slots", "")
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("lists all of the mentor's slots", func(t *testing.T) {
		fb := startFakeBackend(t, map[string]string{
			"getMentorSlots": `{"success":true,"data":[
				{"slot_id":"S1","mentor_id":"M1","mentor_email":"ravi@example.com","date":"2026-09-01","start_time":"10:00","end_time":"10:30","status":"OPEN"},
				{"slot_id":"S2","mentor_id":"M1","mentor_email":"ravi@example.com","date":"2026-09-01","start_time":"11:00","end_time":"11:30","status":"BOOKED"}
			]}`,
		})

		req := jsonRequest(http.MethodGet, "/api/mentor/slots?mentorId=M1", "")
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		slots, ok := body["slots"].([]any)
		require.True(t, ok)
		assert.Len(t, slots, 2)
		assert.Equal(t, "M1", fb.params()["mentorId"])
	})
}

func TestCancelMentorSlot(t *testing.T) {
	t.Run("resolves mentor id from session email", func(t *testing.T) {
		app := newTestApp(t)
		fb := startFakeBackend(t, map[string]string{
			"getMentorByEmail": mentorRecordJSON,
			"cancelSlot":       `{"success":true}`,
		})

		req := jsonRequest(http.MethodPost, "/api/mentor/slots/cancel", `{"slotId":"S1"}`)
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "S1", fb.params()["slotId"])
		assert.Equal(t, "M1", fb.params()["mentorId"])
	})

	t.Run("students may not cancel", func(t *testing.T) {
		app := newTestApp(t)
		fb := startFakeBackend(t, nil)

		req := jsonRequest(http.MethodPost, "/api/mentor/slots/cancel", `{"slotId":"S1"}`)
		req.AddCookie(studentCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Only mentors can cancel slots", body["error"])
		assert.Zero(t, fb.callCount())
	})

	t.Run("slotId required", func(t *testing.T) {
		app := newTestApp(t)
		fb := startFakeBackend(t, nil)

		req := jsonRequest(http.MethodPost, "/api/mentor/slots/cancel", `{}`)
		req.AddCookie(mentorCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, fb.callCount())
	})
}
