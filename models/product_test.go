package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "lowercases and hyphenates",
			title: "Notebook Dell Inspiron 15",
			want:  "notebook-dell-inspiron-15",
		},
		{
			name:  "strips diacritics",
			title: "Fogão 4 Bocas Atlas Mônaco",
			want:  "fogao-4-bocas-atlas-monaco",
		},
		{
			name:  "removes punctuation",
			title: "Tela 15.6\" Full HD, Windows 11!",
			want:  "tela-156-full-hd-windows-11",
		},
		{
			name:  "collapses whitespace runs",
			title: "Smart   TV\t55 Polegadas",
			want:  "smart-tv-55-polegadas",
		},
		{
			name:  "keeps existing hyphens",
			title: "Blu-ray Player",
			want:  "blu-ray-player",
		},
		{
			name:  "collapses double hyphens",
			title: "Caixa - de Som",
			want:  "caixa-de-som",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeSlug(tt.title))
		})
	}
}

func TestMakeSlugDeterministic(t *testing.T) {
	title := "Cafeteira Elétrica Três Corações"
	first := MakeSlug(title)

	// Same title always yields the same slug, no matter how often derived.
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MakeSlug(title))
	}

	// A changed title yields a different slug.
	assert.NotEqual(t, first, MakeSlug(title+" Vermelha"))
}
