package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console message keys. The English text doubles as the catalog key.
const (
	msgShareSucceeded = "Folders shared successfully: %d folders, %d recipients.\n"
	msgShareFailed    = "Error sharing folders: %s\n"
	msgNoFolders      = "No folders to share.\n"
	msgListed         = "%d folders listed.\n"
)

func init() {
	es := language.Spanish

	_ = message.SetString(es, msgShareSucceeded,
		"Los grupos de carpetas se compartieron exitosamente: %d carpetas, %d destinatarios.\n")
	_ = message.SetString(es, msgShareFailed, "Error al compartir los grupos de carpetas: %s\n")
	_ = message.SetString(es, msgNoFolders, "No hay carpetas para compartir.\n")
	_ = message.SetString(es, msgListed, "%d carpetas listadas.\n")
}

// newPrinter returns a printer for the configured console language.
// Unknown tags fall back to English.
func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return message.NewPrinter(tag)
}
