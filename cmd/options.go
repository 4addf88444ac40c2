package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"storage configuration YAML path"`

	Save  *SaveCmd  `command:"save"  description:"Write the current settings snapshot"`
	Load  *LoadCmd  `command:"load"  description:"Reconcile the settings with the stored snapshot"`
	Show  *ShowCmd  `command:"show"  description:"Print settings with their source"`
	Watch *WatchCmd `command:"watch" description:"Reload the snapshot whenever it changes"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "save":
		o.Save = &SaveCmd{}
	case "load":
		o.Load = &LoadCmd{}
	case "show":
		o.Show = &ShowCmd{}
	case "watch":
		o.Watch = &WatchCmd{}
	}
}
