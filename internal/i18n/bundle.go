package i18n

import "fmt"

// Bundle resolves message keys to localized strings. Lookups are
// deterministic per (key, language) pair; a missing translation falls back
// to the English catalog and finally to the key itself, so a message lookup
// always renders something.
type Bundle struct {
	catalogs map[Language]map[string]string
}

// NewBundle returns a bundle holding the built-in catalogs.
func NewBundle() *Bundle {
	return &Bundle{catalogs: catalogs}
}

// Message returns the localized text for key, applying fmt-style argument
// substitution when args are given.
func (b *Bundle) Message(lang Language, key string, args ...any) string {
	text, ok := b.catalogs[lang][key]
	if !ok {
		text, ok = b.catalogs[LanguageEN][key]
	}
	if !ok {
		text = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// UILanguages returns the supported languages with display names localized
// for lang, in display order.
func (b *Bundle) UILanguages(lang Language) []UILanguage {
	languages := Languages()
	out := make([]UILanguage, 0, len(languages))
	for _, l := range languages {
		out = append(out, UILanguage{Name: b.Message(lang, "language."+string(l)), Code: l})
	}
	return out
}

var catalogs = map[Language]map[string]string{
	LanguageEN: {
		"language.de": "German",
		"language.fr": "French",
		"language.it": "Italian",
		"language.en": "English",

		"general.message.error": "Something went wrong. Please try again later.",

		"userService.message.saved":                   "Member saved.",
		"userService.message.saveError":               "The member could not be saved.",
		"userService.message.deleted":                 "Member deleted.",
		"userService.message.deleteError":             "The member could not be deleted.",
		"userService.message.notFound":                "No member found.",
		"userService.message.givenIdWasNull":          "No member id given.",
		"userService.message.paymentStatusReset":      "Payment status has been reset for all members.",
		"userService.message.paymentStatusResetError": "The payment status could not be reset.",

		"userDetailService.message.saved":                   "Member details saved.",
		"userDetailService.message.saveError":               "The member details could not be saved.",
		"userDetailService.message.deleted":                 "Member details deleted.",
		"userDetailService.message.deleteError":             "The member details could not be deleted.",
		"userDetailService.message.notFound":                "No member details found.",
		"userDetailService.message.givenIdWasNull":          "No member details id given.",
		"userDetailService.message.paymentStatusReset":      "Payment status has been reset for all members.",
		"userDetailService.message.paymentStatusResetError": "The payment status could not be reset.",

		"authService.message.passwordReset": "The password has been reset to %s.",
	},
	LanguageDE: {
		"language.de": "Deutsch",
		"language.fr": "Französisch",
		"language.it": "Italienisch",
		"language.en": "Englisch",

		"general.message.error": "Es ist ein Fehler aufgetreten. Bitte später erneut versuchen.",

		"userService.message.saved":                   "Mitglied gespeichert.",
		"userService.message.saveError":               "Das Mitglied konnte nicht gespeichert werden.",
		"userService.message.deleted":                 "Mitglied gelöscht.",
		"userService.message.deleteError":             "Das Mitglied konnte nicht gelöscht werden.",
		"userService.message.notFound":                "Kein Mitglied gefunden.",
		"userService.message.givenIdWasNull":          "Keine Mitglieder-ID angegeben.",
		"userService.message.paymentStatusReset":      "Der Zahlungsstatus wurde für alle Mitglieder zurückgesetzt.",
		"userService.message.paymentStatusResetError": "Der Zahlungsstatus konnte nicht zurückgesetzt werden.",

		"userDetailService.message.saved":                   "Mitgliederdetails gespeichert.",
		"userDetailService.message.saveError":               "Die Mitgliederdetails konnten nicht gespeichert werden.",
		"userDetailService.message.deleted":                 "Mitgliederdetails gelöscht.",
		"userDetailService.message.deleteError":             "Die Mitgliederdetails konnten nicht gelöscht werden.",
		"userDetailService.message.notFound":                "Keine Mitgliederdetails gefunden.",
		"userDetailService.message.givenIdWasNull":          "Keine Detail-ID angegeben.",
		"userDetailService.message.paymentStatusReset":      "Der Zahlungsstatus wurde für alle Mitglieder zurückgesetzt.",
		"userDetailService.message.paymentStatusResetError": "Der Zahlungsstatus konnte nicht zurückgesetzt werden.",

		"authService.message.passwordReset": "Das Passwort wurde auf %s zurückgesetzt.",
	},
	LanguageFR: {
		"language.de": "Allemand",
		"language.fr": "Français",
		"language.it": "Italien",
		"language.en": "Anglais",

		"general.message.error": "Une erreur est survenue. Veuillez réessayer plus tard.",

		"userService.message.saved":                   "Membre enregistré.",
		"userService.message.saveError":               "Le membre n'a pas pu être enregistré.",
		"userService.message.deleted":                 "Membre supprimé.",
		"userService.message.deleteError":             "Le membre n'a pas pu être supprimé.",
		"userService.message.notFound":                "Aucun membre trouvé.",
		"userService.message.givenIdWasNull":          "Aucun identifiant de membre fourni.",
		"userService.message.paymentStatusReset":      "Le statut de paiement a été réinitialisé pour tous les membres.",
		"userService.message.paymentStatusResetError": "Le statut de paiement n'a pas pu être réinitialisé.",

		"userDetailService.message.saved":                   "Détails du membre enregistrés.",
		"userDetailService.message.saveError":               "Les détails du membre n'ont pas pu être enregistrés.",
		"userDetailService.message.deleted":                 "Détails du membre supprimés.",
		"userDetailService.message.deleteError":             "Les détails du membre n'ont pas pu être supprimés.",
		"userDetailService.message.notFound":                "Aucun détail de membre trouvé.",
		"userDetailService.message.givenIdWasNull":          "Aucun identifiant de détail fourni.",
		"userDetailService.message.paymentStatusReset":      "Le statut de paiement a été réinitialisé pour tous les membres.",
		"userDetailService.message.paymentStatusResetError": "Le statut de paiement n'a pas pu être réinitialisé.",

		"authService.message.passwordReset": "Le mot de passe a été réinitialisé à %s.",
	},
	LanguageIT: {
		"language.de": "Tedesco",
		"language.fr": "Francese",
		"language.it": "Italiano",
		"language.en": "Inglese",

		"general.message.error": "Si è verificato un errore. Riprovare più tardi.",

		"userService.message.saved":                   "Membro salvato.",
		"userService.message.saveError":               "Impossibile salvare il membro.",
		"userService.message.deleted":                 "Membro eliminato.",
		"userService.message.deleteError":             "Impossibile eliminare il membro.",
		"userService.message.notFound":                "Nessun membro trovato.",
		"userService.message.givenIdWasNull":          "Nessun ID membro fornito.",
		"userService.message.paymentStatusReset":      "Lo stato di pagamento è stato azzerato per tutti i membri.",
		"userService.message.paymentStatusResetError": "Impossibile azzerare lo stato di pagamento.",

		"userDetailService.message.saved":                   "Dettagli del membro salvati.",
		"userDetailService.message.saveError":               "Impossibile salvare i dettagli del membro.",
		"userDetailService.message.deleted":                 "Dettagli del membro eliminati.",
		"userDetailService.message.deleteError":             "Impossibile eliminare i dettagli del membro.",
		"userDetailService.message.notFound":                "Nessun dettaglio del membro trovato.",
		"userDetailService.message.givenIdWasNull":          "Nessun ID dettaglio fornito.",
		"userDetailService.message.paymentStatusReset":      "Lo stato di pagamento è stato azzerato per tutti i membri.",
		"userDetailService.message.paymentStatusResetError": "Impossibile azzerare lo stato di pagamento.",

		"authService.message.passwordReset": "La password è stata reimpostata su %s.",
	},
}
