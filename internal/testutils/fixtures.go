package testutils

import (
	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// SampleDatasetJSON is a small flat dataset mixing Portuguese and English conventions
const SampleDatasetJSON = `[
  {
    "title": "Fireball",
    "element": "fire",
    "categories": ["ataque", "área"],
    "description": "A blazing orb.\nEfeito: 20 dmg\nCusto: 10 mana"
  },
  {
    "titulo": "Onda Curativa",
    "elemento": "Água",
    "categorias": ["cura"],
    "descricao": "<p>Uma onda gentil.</p><img src=\"https://x.test/onda.gif\">Efeito: cura 15\nLimitações: Só aliados. Uma vez por turno"
  },
  {
    "name": "Raio Solar",
    "element": "Luz",
    "tags": "ataque, luz",
    "description": "Um feixe que queima como fogo.\nCooldown: 2 turnos"
  },
  {
    "nome": "Portal",
    "elemento": "dimensional",
    "descricao": "Abre uma passagem."
  }
]`

// SampleGroupedDatasetYAML is an element-grouped dataset
const SampleGroupedDatasetYAML = `
- elemento: Fogo
  magias:
    - titulo: Chama
      descricao: "Efeito: queima"
    - titulo: Muralha de Fogo
      categorias: [defesa]
- element: Terra
  magias:
    - titulo: Pedregulho
`

// SampleRawInput returns the records of SampleDatasetJSON already decoded
func SampleRawInput() *grimoire.RawInput {
	return &grimoire.RawInput{
		Records: []grimoire.RawRecord{
			{
				"title":       "Fireball",
				"element":     "fire",
				"categories":  []any{"ataque", "área"},
				"description": "A blazing orb.\nEfeito: 20 dmg\nCusto: 10 mana",
			},
			{
				"titulo":     "Onda Curativa",
				"elemento":   "Água",
				"categorias": []any{"cura"},
				"descricao":  "<p>Uma onda gentil.</p><img src=\"https://x.test/onda.gif\">Efeito: cura 15\nLimitações: Só aliados. Uma vez por turno",
			},
			{
				"name":        "Raio Solar",
				"element":     "Luz",
				"tags":        "ataque, luz",
				"description": "Um feixe que queima como fogo.\nCooldown: 2 turnos",
			},
			{
				"nome":      "Portal",
				"elemento":  "dimensional",
				"descricao": "Abre uma passagem.",
			},
		},
	}
}
