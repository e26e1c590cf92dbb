package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Wahhaj Malik", p.Name)
	assert.Equal(t, "/WahhajMalik_resume.pdf", p.Links.Resume)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Experience[0].Bullets, 5)
	assert.Len(t, p.Projects, 2)
	assert.Empty(t, p.Projects[0].Href)
	assert.Equal(t, "Davis, CA", p.Education.Where)
}

func TestSkillsKeepDocumentOrder(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	var names []string
	for _, c := range p.Skills {
		names = append(names, c.Name)
	}
	want := []string{"Languages", "Back-End", "Front-End", "Data", "Data Science", "DevOps", "Tools"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("skill categories mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"React", "HTML", "CSS"}, p.Skills[2].Labels)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
		wantErr bool
	}{
		{
			name:  "minimal",
			input: "name: A\nemail: a@example.com\n",
		},
		{
			name:    "missing name",
			input:   "email: a@example.com\n",
			invalid: true,
			wantErr: true,
		},
		{
			name:    "missing email",
			input:   "name: A\n",
			invalid: true,
			wantErr: true,
		},
		{
			name:    "unknown key",
			input:   "name: A\nemail: a@example.com\nhobbies: [x]\n",
			wantErr: true,
		},
		{
			name:    "skills not a mapping",
			input:   "name: A\nemail: a@example.com\nskills: [Go]\n",
			wantErr: true,
		},
		{
			name:    "skill labels not a list",
			input:   "name: A\nemail: a@example.com\nskills:\n  Go: {x: 1}\n",
			wantErr: true,
		},
		{
			name:    "duplicate skill category",
			input:   "name: A\nemail: a@example.com\nskills:\n  Data: [Kafka]\n  Tools: [Git]\n  Data: [Mongo]\n",
			wantErr: true,
		},
		{
			name:    "empty skill category",
			input:   "name: A\nemail: a@example.com\nskills:\n  \"\": [Go]\n",
			invalid: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	doc := "name: A\nemail: a@example.com\nskills:\n  Zeta: [z]\n  Alpha: [a, b]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	want := Skills{
		{Name: "Zeta", Labels: []string{"z"}},
		{Name: "Alpha", Labels: []string{"a", "b"}},
	}
	if diff := cmp.Diff(want, p.Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSkillsMarshalKeepsOrder(t *testing.T) {
	in := Skills{
		{Name: "Zeta", Labels: []string{"z"}},
		{Name: "Alpha", Labels: []string{"a"}},
	}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)

	var back Skills
	require.NoError(t, yaml.Unmarshal(out, &back))
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
