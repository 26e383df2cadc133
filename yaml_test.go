package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestID_YAML(t *testing.T) {
	type document struct {
		Owner ID[Customer] `yaml:"owner"`
	}

	id, err := ParseDB[Customer](testDBID)
	require.NoError(t, err)

	out, err := yaml.Marshal(document{Owner: id})
	require.NoError(t, err)
	assert.Equal(t, "owner: Cust_371c35ec-34d9-4315-ab31-7ea8889a419a\n", string(out))

	var back document
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, id, back.Owner)
}

func TestID_YAMLRejectsWrongClass(t *testing.T) {
	var doc struct {
		Owner ID[Contract] `yaml:"owner"`
	}
	err := yaml.Unmarshal([]byte("owner: "+testPublicID+"\n"), &doc)
	require.ErrorIs(t, err, ErrWrongClass)
}

func TestAnyID_YAML(t *testing.T) {
	erased := Erase(NewID[Cat]())

	out, err := yaml.Marshal(erased)
	require.NoError(t, err)
	assert.Equal(t, erased.PublicID()+"\n", string(out))
}
