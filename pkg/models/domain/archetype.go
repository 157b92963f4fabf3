package domain

// Archetype is a coarse connector category selecting the defaults of a
// generated secure template.
type Archetype string

const (
	ArchetypeDatabase      Archetype = "database"
	ArchetypeAIModel       Archetype = "ai-model"
	ArchetypeCloudProvider Archetype = "cloud-provider"
	ArchetypeGeneric       Archetype = "generic"
)
