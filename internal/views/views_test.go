package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_DefinesPages(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"header", "footer", "lists", "new_list", "edit_list", "list"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %q", name)
	}
}

func TestTemplates_Plural(t *testing.T) {
	tmpl, err := MustTemplates().New("plural_test").Parse(`{{plural 1 "todo"}} {{plural 2 "todo"}} {{plural 0 "todo"}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, nil))
	assert.Equal(t, "todo todos todos", buf.String())
}
