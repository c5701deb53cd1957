package tui

import "fmt"

// Copy is every user-facing string the screen renders.
type Copy struct {
	Title       string
	Subtitle    string
	Placeholder string
	AddButton   string
	Empty       string
	// Counters takes total, the theme separator, then completed.
	Counters string
}

var catalog = map[string]Copy{
	"en": {
		Title:       "My First To-Do App",
		Subtitle:    "A simple task list",
		Placeholder: "Write a task...",
		AddButton:   "Add",
		Empty:       "No tasks yet. Add the first one!",
		Counters:    "Total tasks: %d %s Completed: %d",
	},
	"es": {
		Title:       "Mi Primera App de Tareas",
		Subtitle:    "Lista de tareas sencilla",
		Placeholder: "Escribe una tarea...",
		AddButton:   "Añadir",
		Empty:       "Todavía no hay tareas. ¡Añade la primera!",
		Counters:    "Tareas totales: %d %s Completadas: %d",
	},
}

// CopyFor falls back to English for unknown languages.
func CopyFor(lang string) Copy {
	if c, ok := catalog[lang]; ok {
		return c
	}
	return catalog["en"]
}

func (c Copy) counterLine(total, completed int, sep string) string {
	return fmt.Sprintf(c.Counters, total, sep, completed)
}
