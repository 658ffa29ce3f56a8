package coerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Price  *Float `json:"price"`
	Rating *Int   `json:"rating"`
	Born   *Date  `json:"born"`
}

func TestFloatAcceptsNumbersAndStrings(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": 19.5}`), &p))
	assert.Equal(t, Float(19.5), *p.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": " 42 "}`), &p))
	assert.Equal(t, Float(42), *p.Price)

	err := json.Unmarshal([]byte(`{"price": "cheap"}`), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotNumber)

	err = json.Unmarshal([]byte(`{"price": ""}`), &p)
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestIntRejectsFractions(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"rating": "5"}`), &p))
	assert.Equal(t, Int(5), *p.Rating)

	require.NoError(t, json.Unmarshal([]byte(`{"rating": 3}`), &p))
	assert.Equal(t, Int(3), *p.Rating)

	err := json.Unmarshal([]byte(`{"rating": 4.5}`), &p)
	assert.ErrorIs(t, err, ErrNotInteger)
}

func TestNullLeavesPointerNil(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": null, "rating": null, "born": null}`), &p))
	assert.Nil(t, p.Price)
	assert.Nil(t, p.Rating)
	assert.Nil(t, p.Born)
}

func TestDateLayouts(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"born": "2001-09-03"}`), &p))
	assert.True(t, time.Date(2001, 9, 3, 0, 0, 0, 0, time.UTC).Equal(p.Born.Time))

	require.NoError(t, json.Unmarshal([]byte(`{"born": "2001-09-03T10:00:00+02:00"}`), &p))
	assert.True(t, time.Date(2001, 9, 3, 8, 0, 0, 0, time.UTC).Equal(p.Born.Time))

	err := json.Unmarshal([]byte(`{"born": "03/09/2001"}`), &p)
	assert.ErrorIs(t, err, ErrNotDate)
}
