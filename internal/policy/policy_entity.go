package policy

// Policy is a static company policy document. Topic is the lookup keyword in
// normalized snake_case form.
type Policy struct {
	Topic string
	Body  string
}
