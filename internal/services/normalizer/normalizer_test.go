package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

type NormalizerTestSuite struct {
	suite.Suite
	normalizer normalizer.Normalizer
}

func (s *NormalizerTestSuite) SetupTest() {
	s.normalizer = normalizer.New()
}

func (s *NormalizerTestSuite) TestNormalizeEmptyRecord() {
	for name, raw := range map[string]grimoire.RawRecord{
		"empty map": {},
		"nil map":   nil,
		"junk keys": {"foo": "bar", "title": nil, "name": "   "},
	} {
		s.Run(name, func() {
			spell := s.normalizer.Normalize(raw, "")
			s.Require().NotNil(spell)

			s.Equal(grimoire.PlaceholderName, spell.Name)
			s.Equal("unnamed", spell.ID)
			s.Equal(grimoire.ElementUnknown, spell.Element)
			s.Equal("Unknown", spell.ElementLabel)
			s.Equal(grimoire.IconUnknown, spell.Icon)
			s.Empty(spell.Description)
			s.Empty(spell.Effect)
			s.Empty(spell.Cost)
			s.Empty(spell.Cooldown)
			s.Empty(spell.Duration)
			s.Empty(spell.MediaURL)
			s.NotNil(spell.Categories)
			s.Empty(spell.Categories)
			s.NotNil(spell.Limitations)
			s.Empty(spell.Limitations)
		})
	}
}

func (s *NormalizerTestSuite) TestNormalizeIsIdempotent() {
	raw := grimoire.RawRecord{
		"titulo":     "Bola de Fogo",
		"elemento":   "Fogo",
		"categorias": []any{"ataque", "área"},
		"descricao":  "<p>Uma esfera.</p><img src=\"https://x.test/f.gif\">Efeito: 20 dano\nLimitações: Só de dia. Exige foco",
	}

	first := s.normalizer.Normalize(raw, "")
	second := s.normalizer.Normalize(raw, "")
	s.Equal(first, second)
}

func (s *NormalizerTestSuite) TestLabeledFieldsRoundTrip() {
	s.Run("labels only", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"name":        "Heal",
			"description": "Effect: Heals 10 HP\nCost: 5 mana\nCooldown: 2 turns",
		}, "")

		s.Equal("Heals 10 HP", spell.Effect)
		s.Equal("5 mana", spell.Cost)
		s.Equal("2 turns", spell.Cooldown)
		s.NotContains(spell.Description, "Effect:")
		s.NotContains(spell.Description, "Cost:")
		s.NotContains(spell.Description, "Cooldown:")
	})

	s.Run("narrative before the effect is kept", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"name":        "Heal",
			"description": "Calls down light.\nEffect: Heals 10 HP\nCost: 5 mana\nCooldown: 2 turns\nDuration: instant",
		}, "")

		s.Equal("Calls down light.", spell.Description)
		s.Equal("instant", spell.Duration)
	})

	s.Run("label value on the following line", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"name":        "Heal",
			"description": "Efeito:\nCura 10 PV\nCusto: 4",
		}, "")

		s.Equal("Cura 10 PV", spell.Effect)
		s.Equal("4", spell.Cost)
	})

	s.Run("decorated labels", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"name":        "Heal",
			"description": "<b>Custo:</b> 5\n**Duração:** 3 turnos\n⏳ Recarga : 1 turno",
		}, "")

		s.Equal("5", spell.Cost)
		s.Equal("3 turnos", spell.Duration)
		s.Equal("1 turno", spell.Cooldown)
		s.Empty(spell.Description)
	})

	s.Run("unclosed angle bracket keeps later labels", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"title":       "Drain",
			"description": "Steals life when HP <half\nEffect: 5 dmg\nCost: 2 mana",
		}, "")

		s.Equal("Steals life when HP <half", spell.Description)
		s.Equal("5 dmg", spell.Effect)
		s.Equal("2 mana", spell.Cost)
	})

	s.Run("first occurrence wins", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"name":        "Heal",
			"description": "Cost: 5\nMana: 7",
		}, "")

		s.Equal("5", spell.Cost)
	})
}

func (s *NormalizerTestSuite) TestPortugueseLabels() {
	spell := s.normalizer.Normalize(grimoire.RawRecord{
		"title":       "Fireball",
		"element":     "fire",
		"description": "A blazing orb.\nEfeito: 20 dmg\nCusto: 10 mana",
	}, "")

	s.Equal("Fireball", spell.Name)
	s.Equal("fireball", spell.ID)
	s.Equal("fire", spell.Element)
	s.Equal("Fire", spell.ElementLabel)
	s.Equal("🔥", spell.Icon)
	s.Equal("20 dmg", spell.Effect)
	s.Equal("10 mana", spell.Cost)
	s.Equal("A blazing orb.", spell.Description)
}

func (s *NormalizerTestSuite) TestExplicitFieldWins() {
	spell := s.normalizer.Normalize(grimoire.RawRecord{
		"name":        "Heal",
		"effect":      "Explicit effect",
		"description": "Efeito: labeled effect\nCusto: 3",
	}, "")

	s.Equal("Explicit effect", spell.Effect)
	s.Equal("3", spell.Cost)
	s.Empty(spell.Description)
}

func (s *NormalizerTestSuite) TestFieldAliases() {
	testCases := []struct {
		name     string
		raw      grimoire.RawRecord
		expected string
	}{
		{
			name:     "title beats nome",
			raw:      grimoire.RawRecord{"nome": "Second", "title": "First"},
			expected: "First",
		},
		{
			name:     "blank title falls through",
			raw:      grimoire.RawRecord{"title": "  ", "name": "Fallback"},
			expected: "Fallback",
		},
		{
			name:     "accented key",
			raw:      grimoire.RawRecord{"título": "Relâmpago"},
			expected: "Relâmpago",
		},
		{
			name:     "key differing in case",
			raw:      grimoire.RawRecord{"Título": "Bola de Fogo"},
			expected: "Bola de Fogo",
		},
		{
			name:     "markup in the name",
			raw:      grimoire.RawRecord{"name": "<b>Escudo</b>\nArcano"},
			expected: "Escudo Arcano",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			spell := s.normalizer.Normalize(tc.raw, "")
			s.Equal(tc.expected, spell.Name)
		})
	}
}

func (s *NormalizerTestSuite) TestNonStringScalars() {
	spell := s.normalizer.Normalize(grimoire.RawRecord{
		"title":   "Bolt",
		"mana":    float64(10),
		"cd":      2,
		"duracao": true,
	}, "")

	s.Equal("10", spell.Cost)
	s.Equal("2", spell.Cooldown)
	s.Equal("true", spell.Duration)
}

func (s *NormalizerTestSuite) TestElementResolution() {
	testCases := []struct {
		name    string
		element string
		token   string
		label   string
		icon    string
	}{
		{name: "english", element: "fire", token: "fire", label: "Fire", icon: "🔥"},
		{name: "portuguese with accent", element: "Água", token: "agua", label: "Água", icon: "💧"},
		{name: "first token fallback", element: "Raio Solar", token: "raio solar", label: "Raio Solar", icon: "⚡"},
		{name: "leading emoji", element: "🔥 Fogo", token: "fogo", label: "Fogo", icon: "🔥"},
		{name: "darkness", element: "Escuridão", token: "escuridao", label: "Escuridão", icon: "🌑"},
		{name: "unmapped", element: "plasma", token: "plasma", label: "Plasma", icon: "❔"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			spell := s.normalizer.Normalize(grimoire.RawRecord{"title": "X", "element": tc.element}, "")
			s.Equal(tc.token, spell.Element)
			s.Equal(tc.label, spell.ElementLabel)
			s.Equal(tc.icon, spell.Icon)
		})
	}
}

func (s *NormalizerTestSuite) TestGroupElementInherited() {
	s.Run("record without element inherits", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{"title": "Onda"}, "Água")
		s.Equal("agua", spell.Element)
		s.Equal("💧", spell.Icon)
	})

	s.Run("record element wins", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{"title": "Chama", "elemento": "fogo"}, "Água")
		s.Equal("fogo", spell.Element)
		s.Equal("🔥", spell.Icon)
	})
}

func (s *NormalizerTestSuite) TestCategories() {
	s.Run("list entries", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"categories": []any{"ataque", "  ", "<b>Área</b>", "controle de multidão!", nil},
		}, "")
		s.Equal([]string{"Ataque", "Área", "Controle De Multidão"}, spell.Categories)
	})

	s.Run("separated string", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{"tags": "suporte, cura; buff"}, "")
		s.Equal([]string{"Suporte", "Cura", "Buff"}, spell.Categories)
	})
}

func (s *NormalizerTestSuite) TestLimitations() {
	s.Run("explicit list merged with the labeled block", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"title":       "Eclipse",
			"limitations": []any{"Only at night", "  "},
			"description": "Text\nLimitações: only at night. Requires focus!\nCannot stack\nEfeito: boom",
		}, "")

		s.Equal([]string{"Only at night", "Requires focus", "Cannot stack"}, spell.Limitations)
		s.Equal("boom", spell.Effect)
		s.Equal("Text", spell.Description)
	})

	s.Run("explicit string is split by line", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"limitacoes": "No metal armor\n- Needs a wand",
		}, "")

		s.Equal([]string{"No metal armor", "Needs a wand"}, spell.Limitations)
	})

	s.Run("block runs to the end of text", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"description": "Limitations:\nOne target; Line of sight\nNot underwater",
		}, "")

		s.Equal([]string{"One target", "Line of sight", "Not underwater"}, spell.Limitations)
	})
}

func (s *NormalizerTestSuite) TestMedia() {
	s.Run("img tag in the description", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"description": `Look <img src="https://x.test/a.gif"> here`,
		}, "")

		s.Equal("https://x.test/a.gif", spell.MediaURL)
		s.NotContains(spell.Description, "<img")
		s.True(spell.HasMedia())
	})

	s.Run("explicit media field wins", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{
			"gif":         "https://cdn.test/x.webm",
			"description": `<img src="https://x.test/a.gif">`,
		}, "")

		s.Equal("https://cdn.test/x.webm", spell.MediaURL)
	})

	s.Run("no media", func() {
		spell := s.normalizer.Normalize(grimoire.RawRecord{"description": "plain"}, "")
		s.Empty(spell.MediaURL)
		s.False(spell.HasMedia())
	})
}

func (s *NormalizerTestSuite) TestNormalizeAll() {
	s.Run("nil input", func() {
		result := s.normalizer.NormalizeAll(nil)
		s.Empty(result.Spells)
		s.Empty(result.ByName)
	})

	s.Run("flat records get unique ids", func() {
		result := s.normalizer.NormalizeAll(&grimoire.RawInput{
			Records: []grimoire.RawRecord{
				{"title": "Fireball"},
				{"title": "fireball!"},
				{"title": "Fire Ball"},
				{},
				{},
			},
		})

		s.Require().Len(result.Spells, 5)
		ids := make([]string, 0, len(result.Spells))
		for _, spell := range result.Spells {
			ids = append(ids, spell.ID)
		}
		s.Equal([]string{"fireball", "fireball-2", "fire-ball", "unnamed", "unnamed-2"}, ids)

		s.Len(result.ByName, 3)
		s.Same(result.Spells[0], result.ByName["fireball"])
	})

	s.Run("groups pass their element down", func() {
		result := s.normalizer.NormalizeAll(&grimoire.RawInput{
			Groups: []grimoire.RawGroup{
				{Element: "Água", Records: []grimoire.RawRecord{{"title": "Onda"}, {"title": "Chama", "elemento": "fogo"}}},
				{Element: "terra", Records: []grimoire.RawRecord{{"title": "Muralha"}}},
			},
		})

		s.Require().Len(result.Spells, 3)
		s.Equal("agua", result.Spells[0].Element)
		s.Equal("fogo", result.Spells[1].Element)
		s.Equal("terra", result.Spells[2].Element)
		s.Equal("🌱", result.ByName["muralha"].Icon)
	})
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}
