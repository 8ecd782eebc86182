package param

type SubscriptionOpts struct {
	Bus      string `arg:"-b,--bus,env:AUTOTAG_BUS" default:"default" help:"event bus receiving CloudTrail events"`
	Rule     string `arg:"-r,--rule,env:AUTOTAG_RULE" default:"autotag" help:"name of the managed rule"`
	Function string `arg:"-f,--function,env:AUTOTAG_FUNCTION" default:"autotag" help:"name or ARN of the tagging function"`
}

type Replay struct {
	Path   string `arg:"positional,required" help:"CloudTrail record or EventBridge event, JSON or YAML"`
	DryRun bool   `arg:"-n,--dry-run" help:"resolve the route and tags without tagging anything"`
	Stamp  bool   `arg:"-s,--stamp" help:"set eventTime to now"`
}

type Routes struct{}

type Pattern struct{}

type Subscribe struct {
	SubscriptionOpts
}

type Unsubscribe struct {
	SubscriptionOpts
}

type Config struct{}
