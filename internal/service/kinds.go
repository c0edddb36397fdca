package service

import "github.com/boardhive/jobboard/models"

// AttachmentSpec describes one attachment slot of an account kind: the
// multipart form field it arrives in, the storage key suffix, whether
// registration requires it, and accessors that bind it to the account model.
type AttachmentSpec struct {
	Field    string
	Suffix   string
	Required bool

	current   func(models.Account) *models.Attachment
	assign    func(*models.Account, *models.Attachment)
	assignUpd func(*models.AccountUpdate, *models.Attachment)
}

// KindDescriptor captures everything that varies between account kinds so
// that one lifecycle implementation serves all of them: the path segment used
// in activation links, whether an address is required, and the attachment
// slots the kind carries.
type KindDescriptor struct {
	Kind            models.AccountKind
	PathSegment     string
	RequiresAddress bool
	Attachments     []AttachmentSpec
}

var kindDescriptors = map[models.AccountKind]KindDescriptor{
	models.AccountKindUser: {
		Kind:        models.AccountKindUser,
		PathSegment: "users",
		Attachments: []AttachmentSpec{
			{
				Field:  "profile_pic",
				Suffix: "profilepic",
				current: func(a models.Account) *models.Attachment {
					return a.ProfilePic
				},
				assign: func(a *models.Account, att *models.Attachment) {
					a.ProfilePic = att
				},
				assignUpd: func(u *models.AccountUpdate, att *models.Attachment) {
					u.ProfilePic = att
				},
			},
		},
	},
	models.AccountKindCompany: {
		Kind:            models.AccountKindCompany,
		PathSegment:     "companies",
		RequiresAddress: true,
		Attachments: []AttachmentSpec{
			{
				Field:    "logo",
				Suffix:   "logo",
				Required: true,
				current: func(a models.Account) *models.Attachment {
					return a.Logo
				},
				assign: func(a *models.Account, att *models.Attachment) {
					a.Logo = att
				},
				assignUpd: func(u *models.AccountUpdate, att *models.Attachment) {
					u.Logo = att
				},
			},
			{
				Field:    "certificate",
				Suffix:   "certificate",
				Required: true,
				current: func(a models.Account) *models.Attachment {
					return a.Certificate
				},
				assign: func(a *models.Account, att *models.Attachment) {
					a.Certificate = att
				},
				assignUpd: func(u *models.AccountUpdate, att *models.Attachment) {
					u.Certificate = att
				},
			},
		},
	},
	models.AccountKindAdmin: {
		Kind:        models.AccountKindAdmin,
		PathSegment: "admin",
	},
}

// DescriptorFor returns the kind descriptor for the given account kind.
// The ok flag is false for unknown kinds.
func DescriptorFor(kind models.AccountKind) (KindDescriptor, bool) {
	desc, ok := kindDescriptors[kind]
	return desc, ok
}
