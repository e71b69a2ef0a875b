package main

import (
	"bytes"
	"html/template"
	"iter"
	"log"
	"slices"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Project is one card in the projects grid.
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Link        string   `json:"link" yaml:"link"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// ExperienceEntry is one role in the work history timeline.
type ExperienceEntry struct {
	Company     string   `json:"company" yaml:"company"`
	Role        string   `json:"role" yaml:"role"`
	Period      string   `json:"period" yaml:"period"`
	Description []string `json:"description" yaml:"description"`
}

type EducationEntry struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Detail      string `json:"detail" yaml:"detail"`
}

type SkillSet struct {
	Technical []string `json:"technical" yaml:"technical"`
	Languages []string `json:"languages" yaml:"languages"`
}

// SkillArea is a highlighted competency shown beside the skills heading.
type SkillArea struct {
	Name   string `json:"name" yaml:"name"`
	Icon   string `json:"icon" yaml:"icon"`
	Accent string `json:"accent" yaml:"accent"`
}

// Profile holds the owner's identity and contact details.
type Profile struct {
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Badge         string `json:"badge"`
	Tagline       string `json:"tagline"`
	Location      string `json:"location"`
	Email         string `json:"email"`
	PhoneDisplay  string `json:"phone_display"`
	PhoneTel      string `json:"phone_tel"`
	LinkedIn      string `json:"linkedin"`
	GitHub        string `json:"github"`
	HeroImage     string `json:"hero_image"`
	HeroImageAlt  string `json:"hero_image_alt"`
	ResumeFile    string `json:"resume_file"`
	ContactPitch  string `json:"contact_pitch"`
	ProjectsIntro string `json:"projects_intro"`
	SkillsIntro   string `json:"skills_intro"`
}

// Content is the read-only store behind every list on the page. Accessors
// never expose the backing arrays, so callers cannot mutate what later
// callers see.
type Content struct {
	profile    Profile
	biography  []template.HTML
	projects   []Project
	experience []ExperienceEntry
	education  []EducationEntry
	skills     SkillSet
	skillAreas []SkillArea
}

var defaultContent = sync.OnceValue(func() *Content {
	return NewContent(profile, biography, projects, experience, education, skills, skillAreas)
})

// DefaultContent returns the compiled-in content store.
func DefaultContent() *Content {
	return defaultContent()
}

// NewContent builds a store from the given records. Inputs are deep-copied.
func NewContent(p Profile, bio []string, ps []Project, exp []ExperienceEntry, edu []EducationEntry, sk SkillSet, areas []SkillArea) *Content {
	c := &Content{
		profile:    p,
		projects:   make([]Project, len(ps)),
		experience: make([]ExperienceEntry, len(exp)),
		education:  slices.Clone(edu),
		skills:     cloneSkills(sk),
		skillAreas: slices.Clone(areas),
	}
	for i, proj := range ps {
		c.projects[i] = cloneProject(proj)
	}
	for i, e := range exp {
		c.experience[i] = cloneExperience(e)
	}
	for _, para := range bio {
		c.biography = append(c.biography, renderMarkdown(para))
	}
	return c
}

func (c *Content) Profile() Profile {
	return c.profile
}

// Biography returns the about-me paragraphs as rendered HTML.
func (c *Content) Biography() []template.HTML {
	return slices.Clone(c.biography)
}

// Projects yields projects in display order. The sequence can be ranged
// over any number of times.
func (c *Content) Projects() iter.Seq2[int, Project] {
	return func(yield func(int, Project) bool) {
		for i, p := range c.projects {
			if !yield(i, cloneProject(p)) {
				return
			}
		}
	}
}

// Experience yields work history entries in display order.
func (c *Content) Experience() iter.Seq2[int, ExperienceEntry] {
	return func(yield func(int, ExperienceEntry) bool) {
		for i, e := range c.experience {
			if !yield(i, cloneExperience(e)) {
				return
			}
		}
	}
}

func (c *Content) Education() iter.Seq2[int, EducationEntry] {
	return slices.All(slices.Clone(c.education))
}

func (c *Content) Skills() SkillSet {
	return cloneSkills(c.skills)
}

func (c *Content) SkillAreas() []SkillArea {
	return slices.Clone(c.skillAreas)
}

func (c *Content) ProjectList() []Project {
	return collect(c.Projects())
}

func (c *Content) ExperienceList() []ExperienceEntry {
	return collect(c.Experience())
}

func (c *Content) EducationList() []EducationEntry {
	return collect(c.Education())
}

// Snapshot is the serialisable form of the whole store.
type Snapshot struct {
	Profile    Profile           `json:"profile"`
	Projects   []Project         `json:"projects"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     SkillSet          `json:"skills"`
	SkillAreas []SkillArea       `json:"skill_areas"`
}

func (c *Content) Snapshot() Snapshot {
	return Snapshot{
		Profile:    c.Profile(),
		Projects:   c.ProjectList(),
		Experience: c.ExperienceList(),
		Education:  c.EducationList(),
		Skills:     c.Skills(),
		SkillAreas: c.SkillAreas(),
	}
}

func collect[T any](seq iter.Seq2[int, T]) []T {
	var out []T
	for _, v := range seq {
		out = append(out, v)
	}
	return out
}

func cloneProject(p Project) Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func cloneExperience(e ExperienceEntry) ExperienceEntry {
	e.Description = slices.Clone(e.Description)
	return e
}

func cloneSkills(s SkillSet) SkillSet {
	return SkillSet{
		Technical: slices.Clone(s.Technical),
		Languages: slices.Clone(s.Languages),
	}
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
)

// renderMarkdown converts a biography paragraph to HTML. Raw HTML in the
// source is escaped by goldmark's default renderer.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		log.Printf("Error rendering markdown: %v", err)
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}
