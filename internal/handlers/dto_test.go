package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveDTO(t *testing.T) {
	query, err := url.ParseQuery("row=4&col=7&value=3&extra=ignored")
	require.NoError(t, err)

	dto, err := ParseMoveDTO(query)
	require.NoError(t, err)
	assert.Equal(t, MoveDTO{Row: 4, Col: 7, Value: 3}, dto)
}

func TestParseMoveDTOValueDefaultsToClear(t *testing.T) {
	query, err := url.ParseQuery("row=0&col=0")
	require.NoError(t, err)

	dto, err := ParseMoveDTO(query)
	require.NoError(t, err)
	assert.Equal(t, 0, dto.Value)
}

func TestParseMoveDTORequiresCoordinates(t *testing.T) {
	query, err := url.ParseQuery("row=1")
	require.NoError(t, err)

	_, err = ParseMoveDTO(query)
	assert.Error(t, err)
}

func TestParseRecordsFilterDTO(t *testing.T) {
	query, err := url.ParseQuery("username=ada")
	require.NoError(t, err)

	dto, err := ParseRecordsFilterDTO(query)
	require.NoError(t, err)
	require.NotNil(t, dto.Username)
	assert.Equal(t, "ada", *dto.Username)
	assert.Nil(t, dto.Givens)
}
