package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"

	"github.com/resqnet/protosearch"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/ingestion"
)

var agencies = []*core.Agency{
	{Name: "Hamilton County EMS", RegionCode: "OH", RegionName: "Ohio"},
	{Name: "Franklin County EMS", RegionCode: "OH", RegionName: "Ohio"},
	{Name: "Davidson County EMS", RegionCode: "TN", RegionName: "Tennessee"},
	{Name: "Jefferson County EMS", RegionCode: "KY", RegionName: "Kentucky"},
}

var documents = []ingestion.Document{
	{
		OrgId: 101, OrgName: "Hamilton County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "C-2", Title: "Cardiac Arrest", Section: "Adult Cardiac",
		Body: "Confirm pulselessness and begin compressions at 100 to 120 per minute. Attach the monitor and defibrillate shockable rhythms at maximum energy. Administer epinephrine 1 mg IV or IO every 3 to 5 minutes. Consider amiodarone 300 mg for refractory ventricular fibrillation. Continue cycles until return of spontaneous circulation or termination criteria are met.",
	},
	{
		OrgId: 101, OrgName: "Hamilton County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "C-5", Title: "Chest Pain", Section: "Adult Cardiac",
		Body: "Obtain a 12-lead within 10 minutes of patient contact. Administer aspirin 324 mg chewed unless allergy or active bleeding. Nitroglycerin 0.4 mg sublingual every 5 minutes for systolic pressure above 100, contraindicated after recent phosphodiesterase inhibitor use. Transmit the 12-lead for suspected STEMI and transport to a PCI-capable facility.",
	},
	{
		OrgId: 101, OrgName: "Hamilton County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "M-7", Title: "Naloxone", Section: "Medications",
		Body: "For suspected opioid overdose with respiratory depression, administer naloxone 0.4 to 2 mg IV, IM, or IN. Titrate to adequate respirations rather than full arousal. Repeat every 2 to 3 minutes to a maximum of 10 mg. Pediatric dose is 0.1 mg per kg.",
	},
	{
		OrgId: 101, OrgName: "Hamilton County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "R-3", Title: "Airway Management", Section: "Respiratory",
		Body: "Open the airway with positioning and suction as needed. Ventilate with a bag valve mask and an adjunct before any advanced airway attempt. Supraglottic airway is the first-line advanced device in cardiac arrest. Confirm placement with waveform capnography.",
	},
	{
		OrgId: 102, OrgName: "Franklin County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "T-1", Title: "Trauma Triage", Section: "Trauma",
		Body: "Apply the regional trauma triage criteria. Patients with penetrating torso injury, two or more proximal long bone fractures, or systolic pressure below 90 go to the highest level trauma center. Scene time should not exceed 10 minutes for unstable trauma patients.",
	},
	{
		OrgId: 102, OrgName: "Franklin County Emergency Medical Services", RegionCode: "OH",
		DocumentNumber: "S-2", Title: "Stroke", Section: "Neurological",
		Body: "Perform a stroke screen and establish last known well time. Check blood glucose to rule out hypoglycemia. Notify the receiving facility with a stroke alert and transport to a comprehensive stroke center when large vessel occlusion is suspected.",
	},
	{
		OrgId: 103, OrgName: "Davidson County Emergency Medical Services", RegionCode: "TN",
		DocumentNumber: "P-4", Title: "Pediatric Seizure", Section: "Pediatrics",
		Body: "For active seizure lasting longer than 5 minutes, administer midazolam 0.2 mg per kg IM to a maximum of 10 mg, or 0.1 mg per kg IV. Check blood glucose. Protect the airway and provide oxygen. Do not restrain the patient.",
	},
	{
		OrgId: 103, OrgName: "Davidson County Emergency Medical Services", RegionCode: "TN",
		DocumentNumber: "M-2", Title: "Epinephrine for Anaphylaxis", Section: "Medications",
		Body: "Administer epinephrine 0.3 mg IM for adults with anaphylaxis, 0.15 mg IM for pediatric patients under 25 kg. Repeat every 5 to 15 minutes as needed. Follow with diphenhydramine and steroids per the allergic reaction pathway.",
	},
}

var (
	dbPath       = flag.String("db", "./protocol_db", "database directory")
	seedFileName = flag.String("src", "", "JSON file of seed documents")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// documentsFromFile returns an iterator over documents in a JSON file.
func documentsFromFile(filename string) (iter.Seq[ingestion.Document], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var docs []ingestion.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}

	return documentsFromSlice(docs), nil
}

// documentsFromSlice returns an iterator over a slice of documents.
func documentsFromSlice(docs []ingestion.Document) iter.Seq[ingestion.Document] {
	return func(yield func(ingestion.Document) bool) {
		for _, doc := range docs {
			if !yield(doc) {
				return
			}
		}
	}
}

// importBatched reads from a source iterator and imports documents in
// batches. Each batch checkpoints under its own source name so a rerun
// never skips fresh documents.
func importBatched(ctx context.Context, importer *ingestion.Importer, source iter.Seq[ingestion.Document], batchSize int) error {
	batch := make([]ingestion.Document, 0, batchSize)
	n := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n++
		if _, err := importer.Import(ctx, fmt.Sprintf("seed-%d", n), batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for doc := range source {
		batch = append(batch, doc)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}

func main() {
	service, err := protosearch.NewService(*dbPath)
	if err != nil {
		panic(err)
	}
	defer service.Close()

	ctx := context.Background()

	if _, err := service.Agencies().AddAgencies(ctx, agencies...); err != nil {
		panic(err)
	}

	importer, err := service.NewImporter()
	if err != nil {
		panic(err)
	}
	defer importer.Release()

	var source iter.Seq[ingestion.Document]
	if *seedFileName != "" {
		source, err = documentsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = documentsFromSlice(documents)
	}

	if err := importBatched(ctx, importer, source, 5); err != nil {
		panic(err)
	}

	if err := service.WarmUp(ctx); err != nil {
		panic(err)
	}
}
