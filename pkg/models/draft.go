package models

// Draft holds the submission form input until it is posted.
type Draft struct {
	Text     string
	Source   string
	Category string
}

// Remaining is the number of characters still available for the text.
func (d *Draft) Remaining() int {
	return MaxFactTextLength - len([]rune(d.Text))
}

func (d *Draft) Reset() {
	d.Text = ""
	d.Source = ""
	d.Category = ""
}
