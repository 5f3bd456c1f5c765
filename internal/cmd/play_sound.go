package cmd

// PlaySoundCmd plays a feedback sound
type PlaySoundCmd struct {
	Event string `help:"Event to play the sound for" default:"complete" enum:"begin,complete,favorite"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	return cli.Container.SoundPlayer.PlaySoundForEvent(p.Event)
}
