package openapi

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/kind"
)

var classCustomer = kind.NewClass("Cust")

type customer struct{}

func (customer) IDClass() kind.Class { return classCustomer }

func TestIDSchema(t *testing.T) {
	s := IDSchema(classCustomer)

	assert.True(t, s.Type.Is("string"))
	assert.Contains(t, s.Description, `"Cust"`)
	assert.NotEmpty(t, s.Pattern)

	// The example satisfies the schema's own pattern.
	re := regexp.MustCompile(s.Pattern)
	example, ok := s.Example.(string)
	require.True(t, ok)
	assert.True(t, re.MatchString(example))

	// So does any minted id of the class, and no foreign-class id.
	assert.True(t, re.MatchString(kind.NewID[customer]().PublicID()))
	assert.False(t, re.MatchString("Cont_371c35ec-34d9-4315-ab31-7ea8889a419a"))
}

func TestGenericIDSchema(t *testing.T) {
	name, s := GenericIDSchema()

	assert.Equal(t, "Id", name)
	assert.True(t, s.Type.Is("string"))
	assert.NotEmpty(t, s.Description)
	assert.Equal(t, "Cust_c40bea18-c0c9-44b1-bd0c-43f5283e1670", s.Example)
}
