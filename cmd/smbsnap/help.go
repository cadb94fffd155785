package smbsnap

import (
	"embed"

	"github.com/arthur-debert/smbsnap/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFiles embed.FS

// installTopics adds "smbsnap help <topic>" for the embedded help documents
func installTopics(root *cobra.Command, color bool) {
	m, err := topics.Load(helpFiles, "help", topics.Options{
		Renderer: topics.GlamourRenderer{Color: color},
	})
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	topics.Install(root, m)
}
