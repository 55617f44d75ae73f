package lights

type LightType string

// LightTypePoint is the only supported kind
const LightTypePoint LightType = "point"
