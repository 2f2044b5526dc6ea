package extractor_test

import (
	"strings"
	"testing"

	"go-refolio-backend/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPersonalInfo(t *testing.T) {
	t.Run("Should extract name email and phone from a plain header", func(t *testing.T) {
		text := "John Doe\njohn.doe@example.com\n(555) 123-4567"

		fragment := extractor.Extract(text)

		require.NotNil(t, fragment.PersonalInfo)
		assert.Equal(t, "John", fragment.PersonalInfo.FirstName)
		assert.Equal(t, "Doe", fragment.PersonalInfo.LastName)
		assert.Equal(t, "john.doe@example.com", fragment.PersonalInfo.Email)
		assert.Equal(t, "(555) 123-4567", fragment.PersonalInfo.Phone)
	})

	t.Run("Should extract linkedin website and location", func(t *testing.T) {
		text := strings.Join([]string{
			"Jane A. Smith",
			"linkedin.com/in/janesmith | www.janesmith.dev",
			"Portland, OR",
		}, "\n")

		fragment := extractor.Extract(text)

		require.NotNil(t, fragment.PersonalInfo)
		assert.Equal(t, "linkedin.com/in/janesmith", fragment.PersonalInfo.LinkedIn)
		assert.Equal(t, "www.janesmith.dev", fragment.PersonalInfo.Website)
		assert.Equal(t, "Portland, OR", fragment.PersonalInfo.Location)
	})

	t.Run("Should keep the first match when a field repeats", func(t *testing.T) {
		text := "first@example.com\nsecond@example.com"

		fragment := extractor.Extract(text)

		require.NotNil(t, fragment.PersonalInfo)
		assert.Equal(t, "first@example.com", fragment.PersonalInfo.Email)
	})

	t.Run("Should ignore contact details below the header window", func(t *testing.T) {
		filler := strings.Repeat("lorem ipsum filler content for one resume body line\n", 20)
		text := filler + "buried@example.com"

		fragment := extractor.Extract(text)

		if fragment.PersonalInfo != nil {
			assert.Empty(t, fragment.PersonalInfo.Email)
		}
	})

	t.Run("Should not mistake a boilerplate header for a name", func(t *testing.T) {
		fragment := extractor.Extract("Curriculum Vitae\nJohn Doe")

		require.NotNil(t, fragment.PersonalInfo)
		assert.Equal(t, "John", fragment.PersonalInfo.FirstName)
	})

	t.Run("Should return nil personal info when nothing matches", func(t *testing.T) {
		fragment := extractor.Extract("0000\n1111\n2222")
		assert.Nil(t, fragment.PersonalInfo)
	})
}

func TestExtractDeterminism(t *testing.T) {
	t.Run("Should produce identical fragments on repeated runs", func(t *testing.T) {
		text := strings.Join([]string{
			"John Doe",
			"john.doe@example.com",
			"Experience",
			"Software Engineer at Acme Corp | 2019-2022",
			"- Improved deployment speed by 40%",
			"Skills",
			"Go, Python, Docker",
		}, "\n")

		first := extractor.Extract(text)
		second := extractor.Extract(text)
		assert.Equal(t, first, second)
	})
}

func TestExtractDegradedInput(t *testing.T) {
	t.Run("Should return an empty fragment for empty text", func(t *testing.T) {
		fragment := extractor.Extract("")
		assert.Nil(t, fragment.PersonalInfo)
		assert.Empty(t, fragment.Experience)
		assert.Empty(t, fragment.Education)
		assert.Empty(t, fragment.Skills)
		assert.Empty(t, fragment.Projects)
	})

	t.Run("Should return an empty fragment for whitespace only", func(t *testing.T) {
		fragment := extractor.Extract("  \n\t\n   \n")
		assert.Nil(t, fragment.PersonalInfo)
		assert.Empty(t, fragment.Experience)
	})

	t.Run("Should survive garbage OCR noise", func(t *testing.T) {
		text := "~~~###@@@\n\x00\x01\x02 garbled 3%%%\nExperience\n!!??"
		assert.NotPanics(t, func() { extractor.Extract(text) })
	})

	t.Run("Should keep good sections when one section is noise", func(t *testing.T) {
		text := strings.Join([]string{
			"Experience",
			"%%%% unparseable garbage %%%%",
			"Software Engineer at Acme Corp | 2019-2022",
			"Skills",
			"Go, Python",
		}, "\n")

		fragment := extractor.Extract(text)
		assert.Len(t, fragment.Experience, 1)
		assert.Len(t, fragment.Skills, 2)
	})
}
