package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
)

type patchDivision struct {
	DivisionID dto.Nullable[string] `json:"divisionId"`
}

func TestNullable_TresEstados(t *testing.T) {
	var ausente, nulo, valor patchDivision
	require.NoError(t, json.Unmarshal([]byte(`{}`), &ausente))
	require.NoError(t, json.Unmarshal([]byte(`{"divisionId":null}`), &nulo))
	require.NoError(t, json.Unmarshal([]byte(`{"divisionId":"div-1"}`), &valor))

	assert.False(t, ausente.DivisionID.Set, "ausente = sin cambios")
	assert.True(t, nulo.DivisionID.Set)
	assert.True(t, nulo.DivisionID.Null, "null explícito = limpiar")
	assert.True(t, valor.DivisionID.HasValue())
	assert.Equal(t, "div-1", valor.DivisionID.Value)
}

func TestNullable_TipoIncorrecto(t *testing.T) {
	var p patchDivision
	assert.Error(t, json.Unmarshal([]byte(`{"divisionId":15}`), &p))
}

func TestNullable_Marshal(t *testing.T) {
	b, err := json.Marshal(patchDivision{DivisionID: dto.Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"divisionId":null}`, string(b))

	b, err = json.Marshal(patchDivision{DivisionID: dto.Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"divisionId":"x"}`, string(b))
}
