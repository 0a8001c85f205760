package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateAuthorRequest {
	return CreateAuthorRequest{
		Name:           "Ursula K. Le Guin",
		BirthDate:      "1929-10-21",
		ClientTimeZone: "America/Los_Angeles",
	}
}

func TestCreateAuthorRequest_Validate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validCreateRequest().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := validCreateRequest()
		req.Name = ""
		assert.Error(t, req.Validate())
	})

	t.Run("malformed birth date", func(t *testing.T) {
		req := validCreateRequest()
		req.BirthDate = "21-10-1929"
		assert.Error(t, req.Validate())
	})

	t.Run("missing birth date", func(t *testing.T) {
		req := validCreateRequest()
		req.BirthDate = ""
		assert.Error(t, req.Validate())
	})

	t.Run("unknown timezone", func(t *testing.T) {
		req := validCreateRequest()
		req.ClientTimeZone = "Mars/Olympus_Mons"
		assert.Error(t, req.Validate())
	})

	t.Run("missing timezone", func(t *testing.T) {
		req := validCreateRequest()
		req.ClientTimeZone = ""
		assert.Error(t, req.Validate())
	})
}

func TestUpdateAuthorRequest_Validate(t *testing.T) {
	valid := UpdateAuthorRequest{
		Name:           "Renamed",
		BirthDate:      "1929-10-21",
		Version:        3,
		ClientTimeZone: "UTC",
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("missing version", func(t *testing.T) {
		req := valid
		req.Version = 0
		assert.Error(t, req.Validate())
	})
}

func TestParsedBirthDate(t *testing.T) {
	req := validCreateRequest()
	parsed, err := req.ParsedBirthDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC), parsed)
}

func TestAuthorToResponse(t *testing.T) {
	a := Author{
		ID:        7,
		Name:      "Ursula K. Le Guin",
		BirthDate: time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
		Version:   2,
	}

	resp := a.ToResponse()
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "1929-10-21", resp.BirthDate)
	assert.Equal(t, 2, resp.Version)
}
