package models

const (
	DefaultProfileName = "Name"
	DefaultProfileBio  = "Bio"
)

// Profile is the single user profile shown above the recents and journals tabs.
type Profile struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar []byte `json:"avatar,omitempty"`
}

func DefaultProfile() Profile {
	return Profile{Name: DefaultProfileName, Bio: DefaultProfileBio}
}
