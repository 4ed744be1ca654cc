package i18n

// Rocket dialogue translation keys.
const (
	// KeyRocketWelcome is the banner printed when the rocket dialogue starts.
	KeyRocketWelcome = "rocket.welcome"
	// KeyPromptRadius asks for the rocket radius in feet.
	KeyPromptRadius = "rocket.prompt.radius"
	// KeyPromptConeHeight asks for the cone height in feet.
	KeyPromptConeHeight = "rocket.prompt.cone_height"
	// KeyPromptCylinderHeight asks for the cylinder height in feet.
	KeyPromptCylinderHeight = "rocket.prompt.cylinder_height"
	// KeyPromptExhaustVelocity asks for the exhaust velocity.
	KeyPromptExhaustVelocity = "rocket.prompt.exhaust_velocity"
	// KeyPromptInitialVelocity asks for the initial velocity.
	KeyPromptInitialVelocity = "rocket.prompt.initial_velocity"
	// KeyPromptAngle asks for the launch angle in radians.
	KeyPromptAngle = "rocket.prompt.angle"
	// KeyPromptTripTime asks for the trip length.
	KeyPromptTripTime = "rocket.prompt.trip_time"
	// KeyPromptTax asks whether tax applies.
	KeyPromptTax = "rocket.prompt.tax"
	// KeyTripCost reports the trip cost. Takes the formatted cost.
	KeyTripCost = "rocket.trip_cost"
	// KeyLoading announces the cargo loop.
	KeyLoading = "rocket.loading"
	// KeyLoadedWeight reports the loaded weight. Takes the formatted weight.
	KeyLoadedWeight = "rocket.loaded_weight"
	// KeyPromptSimulationTime asks for the total simulation time.
	KeyPromptSimulationTime = "rocket.prompt.simulation_time"
	// KeyPromptSimulationInterval asks for the sampling interval.
	KeyPromptSimulationInterval = "rocket.prompt.simulation_interval"
	// KeySimulating announces the trajectory output.
	KeySimulating = "rocket.simulating"
)

// Cargo loading translation keys.
const (
	KeyPromptItemWeight = "cargo.prompt.weight"
	KeyPromptItemWidth  = "cargo.prompt.width"
	KeyPromptItemLength = "cargo.prompt.length"
	KeyPromptItemHeight = "cargo.prompt.height"
	// KeyCargoFull is printed when not even a minimal item fits.
	KeyCargoFull = "cargo.full"
	// KeyCargoRejected is printed when an item is out of bounds.
	KeyCargoRejected = "cargo.rejected"
	// KeyCargoMalformed is printed when an item field is not a number.
	KeyCargoMalformed = "cargo.malformed"
)

// Study questionnaire translation keys. Recommendation keys are the values
// of model.Recommendation.
const (
	KeyPromptAttendance = "study.prompt.attendance"
	KeyPromptCoding     = "study.prompt.coding"
	KeyPromptFocus      = "study.prompt.focus"
	KeyPromptSleep      = "study.prompt.sleep"
	KeyPromptExercise   = "study.prompt.exercise"
	KeyPromptHelp       = "study.prompt.help"
	// KeyAnswerYes is the affirmative answer to KeyPromptHelp.
	KeyAnswerYes = "study.answer.yes"
	// KeyStudyScore reports the score. Takes the formatted score.
	KeyStudyScore   = "study.score"
	KeyStudyOnTrack = "study.on_track"
	KeyStudyLow     = "study.low"
)
