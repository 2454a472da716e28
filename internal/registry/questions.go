package registry

// defaultEntries is the precomputed analysis of the DB train rides sample.
func defaultEntries() []Entry {
	return []Entry{
		{
			ID:       "Q01",
			Question: "What percentage of train stops experience an arrival delay?",
			Findings: []string{
				"Around 30% of train stops experienced an arrival delay.",
				"That is nearly 1 in 3 trains arriving late.",
			},
			PlotFile: "Q01_arrival_delay_distribution.png",
		},
		{
			ID:       "Q02",
			Question: "Which stations have the highest average arrival delay?",
			Findings: []string{
				"A few stations show much higher average delays than others.",
				"Likely reasons: high traffic, operational complexity, or frequent disruptions.",
			},
			PlotFile: "Q02_avg_delay_by_station.png",
		},
		{
			ID:       "Q03",
			Question: "At what time of day do arrival delays occur most often?",
			Findings: []string{
				"Delays are more common during morning and late-afternoon peak hours.",
				"Late-night and early-morning periods have fewer delays.",
			},
			PlotFile: "Q03_hourly_arrival_delays.png",
		},
		{
			ID:       "Q04",
			Question: "How do arrival delays vary across station categories?",
			Findings: []string{
				"Delays increase as station size decreases.",
				"Smaller and mid-sized stations have more delayed arrivals than major stations.",
			},
			PlotFile: "Q04_delays_by_station_category.png",
		},
		{
			ID:       "Q05",
			Question: "Do longer arrival delays tend to occur at certain times of the day?",
			Findings: []string{
				"Longer delays occur during daytime and early evening.",
				"Late-night and early morning show shorter average delays.",
			},
			PlotFile: "Q05_avg_delay_by_hour.png",
		},
		{
			ID:       "Q06",
			Question: "How does the arrival delay rate differ between large and small stations?",
			Findings: []string{
				"Smaller stations have a higher percentage of delayed arrivals.",
				"Larger stations handle arrivals more reliably.",
			},
			PlotFile: "Q06_delay_rate_by_station_category.png",
		},
		{
			ID:       "Q07",
			Question: "How does the average arrival delay differ by train line?",
			Findings: []string{
				"Some train lines have much higher average delays than others.",
				"These routes can be prioritized to improve scheduling and reduce delays.",
			},
			PlotFile: "Q07_avg_delay_by_line.png",
		},
		{
			ID:       "Q08",
			Question: "Which train lines have the highest percentage of delayed arrivals?",
			Findings: []string{
				"A few train lines show consistently higher delay rates.",
				"These routes are less reliable and should be prioritized for improvement.",
			},
			PlotFile: "Q08_delay_rate_by_line.png",
		},
		{
			ID:       "Q09",
			Question: "How does the average arrival delay change by hour of the day?",
			Findings: []string{
				"Average delay severity varies across different hours of the day.",
				"Busier periods have higher delays; quieter hours run more smoothly.",
			},
			PlotFile: "Q09_avg_delay_by_hour.png",
		},
		{
			ID:       "Q10",
			Question: "How does the average arrival delay vary by day of the week?",
			Findings: []string{
				"Average arrival delays are higher on weekdays than on weekends.",
				"Weekends generally run more smoothly with fewer delays.",
			},
			PlotFile: "Q10_avg_delay_by_weekday.png",
		},
		{
			ID:       "Q11",
			Question: "How does the average arrival delay vary by month?",
			Findings: []string{
				"The data covers only one month (July), so analysis is only for this period.",
				"Seasonal patterns need multiple months of data.",
			},
			PlotFile: "Q11_avg_delay_by_month.png",
		},
		{
			ID:       "Q12",
			Question: "How does the average arrival delay differ between peak and off-peak hours?",
			Findings: []string{
				"Average delays are higher during peak hours.",
				"Off-peak hours run more smoothly with fewer delays.",
			},
			PlotFile: "Q12_avg_delay_peak_vs_offpeak.png",
		},
		{
			ID:       "Q13",
			Question: "Is there a relationship between planned arrival time and arrival delay?",
			Findings: []string{
				"Delays occur at all arrival times with no strong linear pattern.",
				"Higher delays cluster during busy daytime/evening hours.",
			},
			PlotFile: "Q13_delay_vs_arrival_time.png",
		},
		{
			ID:       "Q14",
			Question: "What proportion of trains are on-time vs delayed?",
			Findings: []string{
				"About 70% of trains arrive on time or early; around 30% are delayed.",
				"Most delays are short; severe delays are relatively rare.",
			},
			PlotFile: "Q14_delay_histogram_red.png",
		},
		{
			ID:       "Q15",
			Question: "How does the arrival delay distribution look overall?",
			Findings: []string{
				"Most arrival delays are small (typical delays are minor).",
				"A few large outliers show that major delays happen occasionally.",
			},
			PlotFile: "Q15_arrival_delay_distribution_line.png",
		},
	}
}
