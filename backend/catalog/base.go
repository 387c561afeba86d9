package catalog

import "medihome/backend/models"

// Preloaded rehabilitation routines. These ship with the app, belong to no
// therapist and are never written to the database.
var baseRoutines = []models.Routine{
	{
		ID:          "rtn-espalda-lumbar-suave",
		Name:        "Espalda (lumbar) — Movilidad suave",
		Category:    "Espalda",
		Difficulty:  "Principiante",
		Duration:    18,
		Description: "Disminuir rigidez lumbar y mejorar control lumbopélvico.",
		Days: []models.DayPlan{
			{
				Name:         "Basculación pélvica en supino",
				Reps:         "3×10",
				Duration:     6,
				Instructions: []string{"Rodillas flexionadas", "Retroversión pélvica", "Respira profundo"},
			},
			{
				Name:         "Puente glúteo asistido",
				Reps:         "3×10",
				Duration:     6,
				Instructions: []string{"Eleva cadera sin dolor", "Mantén 2s", "Desciende controlado"},
			},
			{
				Name:         "Gato–camello",
				Reps:         "3×8",
				Duration:     6,
				Instructions: []string{"Movimiento lento", "Evita dolor agudo", "Sin rebotes"},
			},
		},
	},
	{
		ID:          "rtn-cuello-descarga",
		Name:        "Cuello — Descarga cervical",
		Category:    "Cuello",
		Difficulty:  "Intermedio",
		Duration:    15,
		Description: "Reducir tensión cervical y mejorar movilidad sin dolor.",
		Days: []models.DayPlan{
			{
				Name:         "Inclinaciones laterales activas",
				Reps:         "3×8 por lado",
				Duration:     5,
				Instructions: []string{"Rango sin dolor", "Hombros relajados", "Tempo lento"},
			},
			{
				Name:         "Rotaciones controladas",
				Reps:         "3×8 por lado",
				Duration:     5,
				Instructions: []string{"Mirada al frente", "Evita mareo"},
			},
			{
				Name:         "Isometría cervical suave (mano–frente)",
				Reps:         "3×20s",
				Duration:     5,
				Instructions: []string{"Presión 20–30%", "No contener la respiración"},
			},
		},
	},
	{
		ID:          "rtn-rodilla-control",
		Name:        "Rodilla — Control y fortalecimiento leve",
		Category:    "Piernas",
		Difficulty:  "Principiante",
		Duration:    15,
		Description: "Activación de cuádriceps y control sin impacto.",
		Days: []models.DayPlan{
			{
				Name:         "Cuádriceps isométrico en extensión",
				Reps:         "5×15s",
				Duration:     5,
				Instructions: []string{"Toalla bajo rodilla", "Contracción suave", "Sin dolor"},
			},
			{
				Name:         "Elevación de pierna recta",
				Reps:         "3×10",
				Duration:     5,
				Instructions: []string{"Rodilla extendida", "Sube 30–40°", "Controlado"},
			},
			{
				Name:         "Mini-sentadilla a silla",
				Reps:         "3×8",
				Duration:     5,
				Instructions: []string{"Apoyo en silla", "Rodillas alineadas", "Peso repartido"},
			},
		},
	},
	{
		ID:          "rtn-hombro-escapular",
		Name:        "Hombro — Estabilidad escapular",
		Category:    "Brazos",
		Difficulty:  "Intermedio",
		Duration:    18,
		Description: "Mejorar control escapular y rango sin dolor.",
		Days: []models.DayPlan{
			{
				Name:         "Retracción escapular en pared",
				Reps:         "3×10",
				Duration:     6,
				Instructions: []string{"Espalda a la pared", "Hombros abajo y atrás"},
			},
			{
				Name:         "Deslizamientos tipo 'ángel'",
				Reps:         "3×8",
				Duration:     6,
				Instructions: []string{"Codos y muñecas a la pared", "Sube/baja controlado"},
			},
			{
				Name:         "Rotación externa con banda",
				Reps:         "3×12",
				Duration:     6,
				Instructions: []string{"Codo pegado al cuerpo", "Resistencia leve", "Sin compensaciones"},
			},
		},
	},
}
