package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsEnumerationIsOrderedAndRestartable(t *testing.T) {
	c := DefaultContent()

	var first, second []string
	for _, p := range c.Projects() {
		first = append(first, p.Title)
	}
	for _, p := range c.Projects() {
		second = append(second, p.Title)
	}

	want := []string{"32mmstudios.com", "Namira Paintball Website", "Data Analysis Project"}
	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
}

func TestProjectsEnumerationStopsEarly(t *testing.T) {
	var seen int
	for i := range DefaultContent().Projects() {
		seen++
		if i == 0 {
			break
		}
	}
	assert.Equal(t, 1, seen)
}

func TestContentAccessorsReturnCopies(t *testing.T) {
	c := DefaultContent()

	list := c.ProjectList()
	list[0].Title = "changed"
	list[0].Tags[0] = "changed"

	for _, p := range c.Projects() {
		p.Tags[0] = "changed"
		break
	}

	again := c.ProjectList()
	assert.Equal(t, "32mmstudios.com", again[0].Title)
	assert.Equal(t, "HTML", again[0].Tags[0])

	sk := c.Skills()
	sk.Technical[0] = "changed"
	assert.Equal(t, "HTML/CSS", c.Skills().Technical[0])

	exp := c.ExperienceList()
	exp[0].Description[0] = "changed"
	assert.NotEqual(t, "changed", c.ExperienceList()[0].Description[0])
}

func TestNewContentCopiesInputs(t *testing.T) {
	ps := []Project{{Title: "a", Tags: []string{"x"}}}
	c := NewContent(Profile{}, nil, ps, nil, nil, SkillSet{}, nil)
	ps[0].Title = "b"
	ps[0].Tags[0] = "y"

	got := c.ProjectList()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, []string{"x"}, got[0].Tags)
}

func TestExperienceAndSkills(t *testing.T) {
	c := DefaultContent()

	exp := c.ExperienceList()
	require.Len(t, exp, 2)
	assert.Equal(t, "Project Team Member", exp[0].Role)
	assert.Equal(t, "Owner & Digital Marketing Manager", exp[1].Role)
	assert.Len(t, exp[0].Description, 4)

	sk := c.Skills()
	assert.Equal(t, []string{"HTML/CSS", "Python", "JavaScript", "C", "SQL", "R", "Figma"}, sk.Technical)
	assert.Equal(t, []string{"English", "Portuguese", "Creole"}, sk.Languages)

	require.Len(t, c.EducationList(), 1)
	assert.Equal(t, "Stevens Institute of Technology", c.EducationList()[0].Institution)
}

func TestBiographyRendersMarkdown(t *testing.T) {
	bio := DefaultContent().Biography()
	require.Len(t, bio, 3)
	assert.True(t, strings.HasPrefix(string(bio[0]), "<p>"))
	assert.Contains(t, string(bio[2]), "<strong>Python, CSS, SQL, HTML, Javascript, R</strong>")
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	out := string(renderMarkdown("hello <script>alert(1)</script>"))
	assert.NotContains(t, out, "<script>")
}

func TestSnapshot(t *testing.T) {
	s := DefaultContent().Snapshot()
	assert.Equal(t, "Amaro da Luz", s.Profile.Name)
	assert.Len(t, s.Projects, 3)
	assert.Len(t, s.SkillAreas, 4)
}
