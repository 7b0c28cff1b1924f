package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `/.notelist/`
	EnvPrefix      = `NOTELIST`
)

// Config keys shared by the YAML file, cobra flags and viper bindings.
const (
	KeyVaultDir         = "vault_dir"
	KeyEditor           = "editor"
	KeyEditorArgs       = "editor_args"
	KeyDisplay          = "display"
	KeySort             = "sort"
	KeySortReversed     = "sort_reversed"
	KeyMarkdown         = "markdown"
	KeyOverscan         = "overscan"
	KeyExcerptCacheSize = "excerpt_cache_size"
	KeyDebounceShort    = "debounce.short"
	KeyDebounceLong     = "debounce.long"
	KeyLogFile          = "log_file"
	KeyLogLevel         = "log_level"
)
