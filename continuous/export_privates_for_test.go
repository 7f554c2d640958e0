package continuous

// StageCount reports how many stages the active forward chain composes:
// two base stages (normalize, interpolate — fused for multi-stop domains)
// plus one per enabled option stage (clamp, warp, round). Test hook for the
// branch-elimination property; not part of the public API.
func StageCount(s *Scale) int { return s.stages }
